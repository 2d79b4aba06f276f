package scene

import (
	"fmt"
	"image/color"
)

// Color is a normalized RGBA color, each channel in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Demo palette.
var (
	White = Color{1, 1, 1, 1}
	Red   = Color{R: 1, A: 1}
)

// NRGBA converts to the 8 bits per channel, non-premultiplied form.
// Out of range channels are clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("[%g %g %g %g]", c.R, c.G, c.B, c.A)
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}
