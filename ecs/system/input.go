package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem samples the input source once per frame, stores the sample on
// every Input component and forwards action changes to player controllers.
type InputSystem struct {
	source  input.Source
	tracker input.Tracker
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil || i.source == nil {
		return
	}

	state := i.source.Poll()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.Move = state.Move
		in.Jump = state.Jump
		in.Confirm = state.Confirm
	})

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		i.tracker.Dispatch(state, p.Controller)
	})
}
