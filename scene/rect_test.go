package scene

import (
	"image"
	"testing"
)

func TestRectImageRect(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want image.Rectangle
	}{
		{"demo", Rect{50, 50, 100, 100}, image.Rect(50, 50, 150, 150)},
		{"origin", Rect{0, 0, 640, 480}, image.Rect(0, 0, 640, 480)},
		{"fractional", Rect{0.5, 0.5, 9.2, 9.2}, image.Rect(0, 0, 9, 9)},
		{"negative origin", Rect{-10, -10, 20, 20}, image.Rect(-10, -10, 10, 10)},
	}
	for _, tt := range tests {
		if got := tt.in.ImageRect(); got != tt.want {
			t.Errorf("%s: ImageRect() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		in   Rect
		want bool
	}{
		{Rect{50, 50, 100, 100}, false},
		{Rect{0, 0, 0, 0}, true},
		{Rect{10, 10, -5, 5}, true},
		{Rect{10, 10, 5, 0}, true},
	}
	for _, tt := range tests {
		if got := tt.in.Empty(); got != tt.want {
			t.Errorf("%s.Empty() = %t, want %t", tt.in, got, tt.want)
		}
	}
}
