package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

const groundLayer = 0

var groundColor = color.RGBA{R: 0x4a, G: 0x7c, B: 0x3a, A: 0xff}

type triggerKind struct {
	tag      controller.Tag
	spec     string
	onFloor  bool
	fallback color.Color
}

var triggerKinds = map[rune]triggerKind{
	levels.GlyphCollectable: {tag: controller.TagCollectable, spec: "collectable", fallback: color.RGBA{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff}},
	levels.GlyphDoor:        {tag: controller.TagDoor, spec: "door", onFloor: true, fallback: color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}},
	levels.GlyphWater:       {tag: controller.TagWater, spec: "water", fallback: color.RGBA{R: 0x2f, G: 0x80, B: 0xed, A: 0xaa}},
}

// LoadLevelToWorld creates ground and trigger entities for a parsed level and
// registers their shapes with the physics world.
func LoadLevelToWorld(w *ecs.World, pw *physics.World, layout *levels.Layout, specs prefabs.TriggersSpec) error {
	if w == nil || pw == nil || layout == nil {
		return fmt.Errorf("level: nil world or layout")
	}

	for _, s := range layout.Solids {
		if err := addGround(w, pw, s); err != nil {
			return err
		}
	}

	for _, p := range layout.Triggers {
		if _, err := NewTrigger(w, pw, p, specs); err != nil {
			return err
		}
	}
	return nil
}

func addGround(w *ecs.World, pw *physics.World, s levels.Solid) error {
	width := s.MaxX - s.MinX
	height := s.MaxY - s.MinY

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.StaticTileComponent.Kind(), &component.StaticTile{Width: width, Height: height}); err != nil {
		return fmt.Errorf("level: add static tile: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      s.MinX + width/2,
		Y:      s.MinY + height/2,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return fmt.Errorf("level: add tile transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: width, Height: height, Color: groundColor}); err != nil {
		return fmt.Errorf("level: add tile sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: groundLayer}); err != nil {
		return fmt.Errorf("level: add tile layer: %w", err)
	}

	pw.AddStaticBox(s.MinX, s.MinY, s.MaxX, s.MaxY, physics.LayerGround)
	return nil
}

// NewTrigger creates a trigger volume for a placed glyph. The sensor shape
// reports the entity as its overlap data.
func NewTrigger(w *ecs.World, pw *physics.World, p levels.Placement, specs prefabs.TriggersSpec) (ecs.Entity, error) {
	kind, ok := triggerKinds[p.Glyph]
	if !ok {
		return 0, fmt.Errorf("level: no trigger for glyph %q", p.Glyph)
	}
	spec := specs[kind.spec]
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	x, y := p.X, p.Y
	if kind.onFloor {
		y = p.Y - 0.5 + height/2
	}

	e := ecs.CreateEntity(w)
	shape := pw.AddTrigger(x, y, width, height, e)

	if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Tag:    kind.tag,
		Shape:  shape,
		Width:  width,
		Height: height,
	}); err != nil {
		return 0, fmt.Errorf("level: add trigger: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("level: add trigger transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  spec.Sprite.ColorOr(kind.fallback),
	}); err != nil {
		return 0, fmt.Errorf("level: add trigger sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("level: add trigger layer: %w", err)
	}
	return e, nil
}
