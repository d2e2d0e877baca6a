package component

import "github.com/milk9111/platformer/physics"

// PhysicsBody links an entity to its dynamic Chipmunk body.
type PhysicsBody struct {
	Body   *physics.Body
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
