package component

import "image/color"

// Sprite is a flat colored box drawn centered on the transform.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.Color
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
