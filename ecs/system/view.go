package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const defaultZoom = 48.0

// view maps world units (+Y up) to screen pixels (+Y down) around the camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func cameraView(w *ecs.World, screenW, screenH int) view {
	v := view{
		zoom:  defaultZoom,
		halfW: float64(screenW) / 2,
		halfH: float64(screenH) / 2,
	}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.camX = camTransform.X
		v.camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		v.zoom = camComp.Zoom
	}
	return v
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + v.halfW, v.halfH - (y-v.camY)*v.zoom
}
