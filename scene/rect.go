package scene

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle: origin, then size, in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ImageRect truncates the geometry to integer pixel bounds.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.W, r.H)
}

// Box is a solid-color rectangle.
type Box struct {
	Rect  Rect
	Color Color
}
