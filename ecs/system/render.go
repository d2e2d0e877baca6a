package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	eyeColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders every visible Transform+Sprite entity as a box, lowest render
// layer first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(skyColor)

	b := screen.Bounds()
	v := cameraView(w, b.Dx(), b.Dy())

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden || s.Color == nil {
			continue
		}

		width, height := s.Width, s.Height
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			width, height = squash(a.Current, a.Frame, width, height)
		}

		cx, cy := v.toScreen(t.X, t.Y)
		pw := width * v.zoom
		ph := height * v.zoom
		vector.DrawFilledRect(screen, float32(cx-pw/2), float32(cy-ph/2), float32(pw), float32(ph), s.Color, false)

		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			drawEye(screen, t.ScaleX, cx, cy, pw, ph)
		}
	}
}

// squash deforms the player box to make the current clip readable.
func squash(clip string, frame int, width, height float64) (float64, float64) {
	switch clip {
	case ClipJump:
		return width * 0.9, height * 1.1
	case ClipFall:
		return width * 1.05, height * 0.95
	case ClipRun:
		if frame%2 == 1 {
			return width, height * 0.95
		}
	}
	return width, height
}

func drawEye(screen *ebiten.Image, facing, cx, cy, pw, ph float64) {
	dir := 1.0
	if facing < 0 {
		dir = -1
	}
	size := pw * 0.2
	ex := cx + dir*pw*0.25 - size/2
	ey := cy - ph*0.25 - size/2
	vector.DrawFilledRect(screen, float32(ex), float32(ey), float32(size), float32(size), eyeColor, false)
}
