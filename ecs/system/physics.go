package system

import (
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"go.uber.org/zap"
)

// PhysicsSystem steps the space and copies body positions into transforms.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (p *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil || p.world == nil {
		return
	}

	p.world.Step(dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

// TriggerSystem delivers trigger overlaps recorded during the last physics
// step to the overlapping player's controller.
type TriggerSystem struct {
	world *physics.World
	log   *zap.Logger
}

func NewTriggerSystem(world *physics.World, log *zap.Logger) *TriggerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &TriggerSystem{world: world, log: log}
}

func (s *TriggerSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.world == nil {
		return
	}

	for _, overlap := range s.world.DrainOverlaps() {
		triggerEntity, ok := overlap.Data.(ecs.Entity)
		if !ok || !w.IsAlive(triggerEntity) {
			continue
		}
		trigger, ok := ecs.Get(w, triggerEntity, component.TriggerComponent.Kind())
		if !ok {
			continue
		}
		ctrl := s.controllerFor(w, overlap.Actor)
		if ctrl == nil {
			continue
		}

		s.log.Debug("trigger enter",
			zap.String("tag", string(trigger.Tag)),
			zap.Stringer("entity", triggerEntity),
		)

		shape := trigger.Shape
		ctrl.OnTriggerEnter(controller.Trigger{
			Tag: trigger.Tag,
			Destroy: func() {
				s.world.RemoveShape(shape)
				ecs.DestroyEntity(w, triggerEntity)
			},
		})
	}
}

func (s *TriggerSystem) controllerFor(w *ecs.World, actor *physics.Body) *controller.Controller {
	var found *controller.Controller
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Player, body *component.PhysicsBody) {
		if found == nil && body.Body == actor {
			found = p.Controller
		}
	})
	return found
}
