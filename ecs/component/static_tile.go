package component

// StaticTile is a solid run of level geometry of the given size.
type StaticTile struct {
	Width  float64
	Height float64
}

var StaticTileComponent = NewComponent[StaticTile]()
