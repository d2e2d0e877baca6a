package physics

import (
	"fmt"
	"strings"

	"github.com/milk9111/platformer/controller"
)

const (
	LayerGround  controller.LayerMask = 1 << 0
	LayerPlayer  controller.LayerMask = 1 << 1
	LayerTrigger controller.LayerMask = 1 << 2
)

var layerNames = map[string]controller.LayerMask{
	"ground":  LayerGround,
	"player":  LayerPlayer,
	"trigger": LayerTrigger,
}

// ParseLayers combines named layers into a mask. An empty list selects all layers.
func ParseLayers(names []string) (controller.LayerMask, error) {
	if len(names) == 0 {
		return controller.AllLayers, nil
	}
	var mask controller.LayerMask
	for _, name := range names {
		layer, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("physics: unknown layer %q", name)
		}
		mask |= layer
	}
	return mask, nil
}
