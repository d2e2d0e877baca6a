package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/controller"
)

const stickDeadzone = 0.2

// State is one sample of the player's action inputs.
type State struct {
	Move        controller.Vec2
	Jump        bool
	JumpPressed bool
	// Confirm is a just-pressed Enter or gamepad start button.
	Confirm bool
}

// Source samples input once per frame.
type Source interface {
	Poll() State
}

// Keyboard reads A/D, the arrow keys and Space, plus the first standard
// gamepad's left stick and bottom face button.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll() State {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	confirm := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		confirm = confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return State{
		Move:        controller.Vec2{X: moveX},
		Jump:        jump,
		JumpPressed: jumpPressed,
		Confirm:     confirm,
	}
}

// Handler receives phased action events.
type Handler interface {
	OnMove(controller.MoveEvent)
	OnJump(controller.JumpEvent)
}

// Tracker turns polled state into action events: Started and Performed when
// the move vector leaves zero, Performed on every further change, Canceled on
// return to zero. Jump is Started and Performed on press, Canceled on release.
type Tracker struct {
	move controller.Vec2
	jump bool
}

func (t *Tracker) Dispatch(s State, h Handler) {
	if h == nil {
		return
	}

	if s.Move != t.move {
		switch {
		case s.Move.IsZero():
			h.OnMove(controller.MoveEvent{Phase: controller.PhaseCanceled})
		case t.move.IsZero():
			h.OnMove(controller.MoveEvent{Phase: controller.PhaseStarted, Value: s.Move})
			h.OnMove(controller.MoveEvent{Phase: controller.PhasePerformed, Value: s.Move})
		default:
			h.OnMove(controller.MoveEvent{Phase: controller.PhasePerformed, Value: s.Move})
		}
		t.move = s.Move
	}

	if s.JumpPressed {
		h.OnJump(controller.JumpEvent{Phase: controller.PhaseStarted})
		h.OnJump(controller.JumpEvent{Phase: controller.PhasePerformed})
	} else if t.jump && !s.Jump {
		h.OnJump(controller.JumpEvent{Phase: controller.PhaseCanceled})
	}
	t.jump = s.Jump || s.JumpPressed
}

// Reset forgets the last sampled state so the next non-zero move fires again.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
