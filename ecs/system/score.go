package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ScoreView displays the score text.
type ScoreView interface {
	SetScore(text string)
}

// ScoreSystem pushes the score text to the view whenever it changes.
type ScoreSystem struct {
	view ScoreView
}

func NewScoreSystem(view ScoreView) *ScoreSystem {
	return &ScoreSystem{view: view}
}

func (s *ScoreSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.view == nil {
		return
	}
	ecs.ForEach(w, component.ScoreComponent.Kind(), func(e ecs.Entity, score *component.Score) {
		if score.Counter == nil {
			return
		}
		text := score.Counter.Text()
		if text == score.RenderedText {
			return
		}
		s.view.SetScore(text)
		score.RenderedText = text
	})
}
