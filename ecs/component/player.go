package component

import "github.com/milk9111/platformer/controller"

type Player struct {
	Controller *controller.Controller
}

var PlayerComponent = NewComponent[Player]()
