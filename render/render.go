// Package render performs the per-frame render pass: clear the whole
// target to the scene background, then fill each box, in order.
package render

import (
	"go.creack.net/hellopiston/scene"
)

// Canvas is a render target for one frame.
// Implementations clip boxes to their own bounds; drawing never fails.
type Canvas interface {
	Clear(scene.Color)
	FillRect(scene.Box)
}

// Frame performs exactly one render pass on c.
func Frame(c Canvas, s scene.Scene) {
	c.Clear(s.Background)
	for _, b := range s.Boxes {
		c.FillRect(b)
	}
}
