package component

import "github.com/milk9111/platformer/controller"

// Score holds the level score counter and the text last pushed to the HUD.
type Score struct {
	Counter      *controller.Counter
	RenderedText string
}

var ScoreComponent = NewComponent[Score]()
