package component

import "github.com/milk9111/platformer/controller"

// Input stores the last sampled action state for an entity.
type Input struct {
	Move    controller.Vec2
	Jump    bool
	Confirm bool
}

var InputComponent = NewComponent[Input]()
