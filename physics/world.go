package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeTrigger
)

// DefaultGravity is the downward acceleration in world units per second squared.
const DefaultGravity = -9.81

// Overlap is a trigger-volume overlap that began during the last Step.
type Overlap struct {
	Actor   *Body
	Trigger *cp.Shape
	Data    any
}

// World owns the Chipmunk space. +Y points up.
type World struct {
	space         *cp.Space
	handlersReady bool

	bodies   map[*cp.Shape]*Body
	overlaps []Overlap
}

func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:  space,
		bodies: make(map[*cp.Shape]*Body),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddStaticBox adds solid level geometry spanning the given bounds.
func (w *World) AddStaticBox(minX, minY, maxX, maxY float64, layer controller.LayerMask) *cp.Shape {
	bb := cp.BB{L: minX, B: minY, R: maxX, T: maxY}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(layerFilter(layer))
	w.space.AddShape(shape)
	return shape
}

// AddTrigger adds a sensor box centered at (x, y). data is reported back in
// Overlap.Data.
func (w *World) AddTrigger(x, y, width, height float64, data any) *cp.Shape {
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTrigger)
	shape.SetFilter(layerFilter(LayerTrigger))
	shape.UserData = data
	w.space.AddShape(shape)
	return shape
}

// BodyConfig describes a dynamic box body.
type BodyConfig struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Layer    controller.LayerMask
}

// AddBody adds a dynamic, rotation-locked box body.
func (w *World) AddBody(cfg BodyConfig) *Body {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}

	b := &Body{width: width, height: height, gravityScale: 1}

	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: cfg.X, Y: cfg.Y})
	cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetFriction(cfg.Friction)
	shape.SetCollisionType(collisionTypeActor)
	layer := cfg.Layer
	if layer == 0 {
		layer = LayerPlayer
	}
	shape.SetFilter(layerFilter(layer))

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)

	b.body = cpBody
	b.shape = shape
	w.bodies[shape] = b
	return b
}

// RemoveShape removes a shape from the space. Must not be called during Step.
func (w *World) RemoveShape(shape *cp.Shape) {
	if w == nil || shape == nil || !w.space.ContainsShape(shape) {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.bodies, shape)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// DrainOverlaps returns overlaps recorded since the last call and clears them.
func (w *World) DrainOverlaps() []Overlap {
	if w == nil || len(w.overlaps) == 0 {
		return nil
	}
	out := w.overlaps
	w.overlaps = nil
	return out
}

// Raycast reports whether a ray hits any shape whose layer is in mask.
func (w *World) Raycast(origin, dir controller.Vec2, distance float64, mask controller.LayerMask) bool {
	if w == nil || w.space == nil || distance <= 0 {
		return false
	}
	filter := cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       uint(mask),
	}
	start := cp.Vector{X: origin.X, Y: origin.Y}

	// Segment queries miss a shape containing the origin; a resting body
	// sinks into the ground by up to the collision slop.
	if inside := w.space.PointQueryNearest(start, 0, filter); inside != nil && inside.Shape != nil && inside.Distance < 0 {
		return true
	}

	end := start.Add(cp.Vector{X: dir.X, Y: dir.Y}.Mult(distance))
	info := w.space.SegmentQueryFirst(start, end, 0, filter)
	return info.Shape != nil
}

func (w *World) setupHandlers() {
	if w.handlersReady {
		return
	}

	triggerHandler := w.space.NewCollisionHandler(collisionTypeActor, collisionTypeTrigger)
	triggerHandler.UserData = w
	triggerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		actorShape, triggerShape := arb.Shapes()
		actor := world.bodies[actorShape]
		if actor == nil {
			actorShape, triggerShape = triggerShape, actorShape
			if actor = world.bodies[actorShape]; actor == nil {
				return true
			}
		}
		world.overlaps = append(world.overlaps, Overlap{
			Actor:   actor,
			Trigger: triggerShape,
			Data:    triggerShape.UserData,
		})
		return true
	}

	w.handlersReady = true
}

func layerFilter(layer controller.LayerMask) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(layer),
		Mask:       cp.ALL_CATEGORIES,
	}
}
