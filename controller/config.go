package controller

// Config holds the designer-tunable movement values.
type Config struct {
	Speed             float64
	JumpForce         float64
	FallMultiplier    float64
	LowJumpMultiplier float64
	GroundLayer       LayerMask
	RayLength         float64
	// JumpBufferTime is how long, in seconds, a jump press stays honorable.
	JumpBufferTime float64
	// RunDeadzone is the |direction.x| above which the Running parameter is set.
	RunDeadzone float64
	// RiseThreshold is the vertical speed above which an airborne body counts
	// as still rising.
	RiseThreshold float64
}

func DefaultConfig() Config {
	return Config{
		Speed:             5,
		JumpForce:         15,
		FallMultiplier:    5,
		LowJumpMultiplier: 4,
		GroundLayer:       AllLayers,
		RayLength:         0.1,
		JumpBufferTime:    0.2,
		RunDeadzone:       0.1,
		RiseThreshold:     0.1,
	}
}
