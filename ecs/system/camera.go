package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem eases the camera transform toward the player.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if !w.IsAlive(cs.targetEntity) {
		target, ok := w.First(component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		cs.targetEntity = target
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	smooth := cam.Smoothness
	if smooth <= 0 {
		smooth = 1
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, smooth)
}
