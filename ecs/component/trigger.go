package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

// Trigger is a sensor volume that reports overlaps without a physical response.
type Trigger struct {
	Tag    controller.Tag
	Shape  *cp.Shape
	Width  float64
	Height float64
}

var TriggerComponent = NewComponent[Trigger]()
