package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewCameraAt creates the camera entity centered on (x, y).
func NewCameraAt(w *ecs.World, spec *prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.CameraSpec{}
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	zoom := spec.Zoom
	if zoom == 0 {
		zoom = 48
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
