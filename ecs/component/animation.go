package component

import "github.com/milk9111/platformer/anim"

type AnimationClip struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation selects a clip from the animator parameters each frame.
type Animation struct {
	Params  *anim.Store
	Clips   map[string]AnimationClip
	Current string
	Frame   int
	Timer   float64
}

var AnimationComponent = NewComponent[Animation]()
