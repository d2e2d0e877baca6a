package entity

import (
	"fmt"

	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewScore creates the entity holding the level's score counter.
func NewScore(w *ecs.World) (ecs.Entity, *controller.Counter, error) {
	counter := &controller.Counter{}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{Counter: counter}); err != nil {
		return 0, nil, fmt.Errorf("score: add score component: %w", err)
	}
	return e, counter, nil
}
