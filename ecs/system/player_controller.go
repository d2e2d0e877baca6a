package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem runs the controller's per-frame step.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if player.Controller != nil {
			player.Controller.FrameStep(dt)
		}
	})
}

// PlayerPhysicsSystem runs the controller's fixed step ahead of the physics
// step.
type PlayerPhysicsSystem struct{}

func NewPlayerPhysicsSystem() *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{}
}

func (p *PlayerPhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if player.Controller != nil {
			player.Controller.FixedStep()
		}
	})
}
