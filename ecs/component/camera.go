package component

// Camera follows the player. Zoom is screen pixels per world unit.
type Camera struct {
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
