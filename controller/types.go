package controller

import "math"

// Vec2 is a 2D vector in world units. +Y points up.
type Vec2 struct {
	X float64
	Y float64
}

var (
	Up   = Vec2{X: 0, Y: 1}
	Down = Vec2{X: 0, Y: -1}
)

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// LayerMask is a bitset of physics layers.
type LayerMask uint32

const AllLayers LayerMask = math.MaxUint32

func (m LayerMask) Has(layer LayerMask) bool {
	return m&layer != 0
}

// Phase is the lifecycle stage of an input action.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseStarted
	PhasePerformed
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhasePerformed:
		return "performed"
	case PhaseCanceled:
		return "canceled"
	default:
		return "waiting"
	}
}

// MoveEvent carries a movement action change.
type MoveEvent struct {
	Phase Phase
	Value Vec2
}

// JumpEvent carries a jump action change.
type JumpEvent struct {
	Phase Phase
}

// Tag classifies trigger volumes.
type Tag string

const (
	TagCollectable Tag = "Collectable"
	TagDoor        Tag = "Door"
	TagWater       Tag = "Water"
)

// Trigger describes the other side of a trigger-volume overlap.
type Trigger struct {
	Tag Tag
	// Destroy removes the overlapping object from the scene. May be nil.
	Destroy func()
}

// Body is the rigid body driven by the controller.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	GravityScale() float64
	SetGravityScale(scale float64)
	ApplyImpulse(impulse Vec2)
}

// Collider exposes the bounds of the controller's collision shape.
type Collider interface {
	// BottomCenter is the midpoint of the shape's lowest edge.
	BottomCenter() Vec2
}

// RayCaster answers ray queries against the physics scene.
type RayCaster interface {
	Raycast(origin, dir Vec2, distance float64, mask LayerMask) bool
}

// Facing orients the visual representation. sign is +1 or -1.
type Facing interface {
	SetFacing(sign float64)
}

// Score receives collectible pickups.
type Score interface {
	Add(n int)
}

// WinPanel is the level-complete overlay. Its visibility is the
// level-complete flag.
type WinPanel interface {
	Show()
	Hide()
	Visible() bool
}

// Scenes reloads scenes by build index.
type Scenes interface {
	Active() int
	Load(index int)
}
