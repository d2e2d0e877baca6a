package component

// Transform positions an entity in world units. X, Y is the center; +Y is up.
// A negative ScaleX mirrors the entity horizontally.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
