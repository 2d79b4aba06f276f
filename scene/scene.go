// Package scene holds the fixed demo scene: the window settings and the
// shapes drawn every frame.
package scene

// Window settings, fixed at construction for the process lifetime.
const (
	Title  = "Hello Piston!"
	Width  = 640
	Height = 480
)

// Window is the immutable window configuration.
type Window struct {
	Title         string
	Width, Height int
	ExitOnEsc     bool // Pressing escape terminates the process.
}

// DemoWindow returns the demo window settings.
func DemoWindow() Window {
	return Window{
		Title:     Title,
		Width:     Width,
		Height:    Height,
		ExitOnEsc: true,
	}
}

// Scene is what gets drawn on each frame: a background fill
// followed by the boxes, in order. A flat list, not a graph.
type Scene struct {
	Background Color
	Boxes      []Box
}

// Demo returns the demo scene: white background, one red box.
func Demo() Scene {
	return Scene{
		Background: White,
		Boxes: []Box{
			{Rect: Rect{X: 50, Y: 50, W: 100, H: 100}, Color: Red},
		},
	}
}
