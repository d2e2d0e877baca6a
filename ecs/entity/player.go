package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

var playerColor = color.RGBA{R: 0x3c, G: 0x8d, B: 0xd6, A: 0xff}

// PlayerDeps are the scene-level collaborators handed to the controller.
type PlayerDeps struct {
	Score    controller.Score
	WinPanel controller.WinPanel
	Scenes   controller.Scenes
	Log      *zap.Logger
}

// NewPlayerAt creates the player entity with its body centered on (x, y) and
// a controller wired to it.
func NewPlayerAt(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, x, y float64, deps PlayerDeps) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	cfg, err := spec.Movement.ControllerConfig()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	body := pw.AddBody(physics.BodyConfig{
		X:        x,
		Y:        y,
		Width:    spec.Body.Width,
		Height:   spec.Body.Height,
		Mass:     spec.Body.Mass,
		Friction: spec.Body.Friction,
		Layer:    physics.LayerPlayer,
	})
	width, height := body.Size()

	e := ecs.CreateEntity(w)
	params := anim.NewStore()

	ctrl := controller.New(cfg, controller.Deps{
		Body:      body,
		Collider:  body,
		RayCaster: pw,
		Animator:  anim.Params{Animator: params},
		Facing:    transformFacing{w: w, e: e},
		Score:     deps.Score,
		WinPanel:  deps.WinPanel,
		Scenes:    deps.Scenes,
		Log:       deps.Log,
	})

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Controller: ctrl}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  spec.Sprite.ColorOr(playerColor),
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), newAnimation(spec.Animation, params)); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return e, nil
}

func newAnimation(spec prefabs.AnimationSpec, params *anim.Store) *component.Animation {
	clips := make(map[string]component.AnimationClip, len(spec.Defs))
	for name, def := range spec.Defs {
		clips[name] = component.AnimationClip{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	return &component.Animation{
		Params:  params,
		Clips:   clips,
		Current: spec.Current,
	}
}

// transformFacing mirrors the entity by the sign of its Transform.ScaleX.
type transformFacing struct {
	w *ecs.World
	e ecs.Entity
}

func (f transformFacing) SetFacing(sign float64) {
	t, ok := ecs.Get(f.w, f.e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	scale := t.ScaleX
	if scale < 0 {
		scale = -scale
	}
	if scale == 0 {
		scale = 1
	}
	if sign < 0 {
		scale = -scale
	}
	t.ScaleX = scale
}
