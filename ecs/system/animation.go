package system

import (
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	ClipIdle = "idle"
	ClipRun  = "run"
	ClipJump = "jump"
	ClipFall = "fall"

	airborneThreshold = 0.1
)

// AnimationSystem is the state machine reading the animator parameters: it
// selects a clip and advances its frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, state *component.Animation) {
		if state.Params == nil {
			return
		}

		next := selectClip(state.Params)
		if state.Params.ConsumeTrigger(anim.Jump.String()) {
			next = ClipJump
			state.Current = ""
		}
		if next != state.Current {
			state.Current = next
			state.Frame = 0
			state.Timer = 0
		}

		clip, ok := state.Clips[state.Current]
		if !ok || clip.FrameCount <= 0 || clip.FPS <= 0 {
			return
		}

		state.Timer += dt
		frameTime := 1 / clip.FPS
		for state.Timer >= frameTime {
			state.Timer -= frameTime
			state.Frame++
			if state.Frame >= clip.FrameCount {
				if clip.Loop {
					state.Frame = 0
				} else {
					state.Frame = clip.FrameCount - 1
				}
			}
		}
	})
}

func selectClip(params *anim.Store) string {
	vy := params.GetFloat(anim.VerticalVelocity.String())
	switch {
	case vy > airborneThreshold:
		return ClipJump
	case vy < -airborneThreshold:
		return ClipFall
	case params.GetBool(anim.Running.String()):
		return ClipRun
	default:
		return ClipIdle
	}
}
