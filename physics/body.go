package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

// Body is a dynamic box body with a per-body gravity scale. It satisfies
// controller.Body and controller.Collider.
type Body struct {
	body         *cp.Body
	shape        *cp.Shape
	width        float64
	height       float64
	gravityScale float64
}

func (b *Body) CP() *cp.Body { return b.body }

func (b *Body) Shape() *cp.Shape { return b.shape }

func (b *Body) Size() (float64, float64) { return b.width, b.height }

func (b *Body) Position() controller.Vec2 {
	p := b.body.Position()
	return controller.Vec2{X: p.X, Y: p.Y}
}

func (b *Body) Velocity() controller.Vec2 {
	v := b.body.Velocity()
	return controller.Vec2{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v controller.Vec2) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

func (b *Body) GravityScale() float64 { return b.gravityScale }

func (b *Body) SetGravityScale(scale float64) { b.gravityScale = scale }

func (b *Body) ApplyImpulse(impulse controller.Vec2) {
	b.body.ApplyImpulseAtLocalPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, cp.Vector{})
}

// BottomCenter returns the midpoint of the box's bottom edge.
func (b *Body) BottomCenter() controller.Vec2 {
	p := b.body.Position()
	return controller.Vec2{X: p.X, Y: p.Y - b.height/2}
}
