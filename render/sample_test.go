package render

import (
	"image/color"
	"testing"

	"go.creack.net/hellopiston/scene"
)

func demoFrame(t *testing.T) *ImageCanvas {
	t.Helper()
	ic := NewImageCanvas(scene.Width, scene.Height)
	Frame(ic, scene.Demo())
	return ic
}

func TestDownsampleGrid(t *testing.T) {
	const cols, rows = 80, 24
	grid := Downsample(demoFrame(t).Image(), cols, rows)

	if len(grid) != rows {
		t.Fatalf("got %d rows, want %d", len(grid), rows)
	}
	for r := range grid {
		if len(grid[r]) != cols {
			t.Fatalf("row %d has %d cols, want %d", r, len(grid[r]), cols)
		}
	}

	whiteCell := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	redCell := color.NRGBA{R: 0xff, A: 0xff}

	// Cell (row 5, col 12) samples pixel (100, 110), inside the box.
	if got := grid[5][12]; got != redCell {
		t.Errorf("cell (5,12) = %v, want %v", got, redCell)
	}
	for _, cell := range [][2]int{{0, 0}, {0, 79}, {23, 0}, {23, 79}} {
		if got := grid[cell[0]][cell[1]]; got != whiteCell {
			t.Errorf("cell (%d,%d) = %v, want %v", cell[0], cell[1], got, whiteCell)
		}
	}
}

func TestDownsampleSingleCell(t *testing.T) {
	grid := Downsample(demoFrame(t).Image(), 1, 1)

	// The lone cell samples the frame center (320, 240), outside the box.
	if got, want := grid[0][0], (color.NRGBA{0xff, 0xff, 0xff, 0xff}); got != want {
		t.Errorf("center cell = %v, want %v", got, want)
	}
}

func TestDownsampleInvalidGrid(t *testing.T) {
	if got := Downsample(demoFrame(t).Image(), 0, 10); got != nil {
		t.Errorf("Downsample(0, 10) = %v, want nil", got)
	}
	if got := Downsample(demoFrame(t).Image(), 10, -1); got != nil {
		t.Errorf("Downsample(10, -1) = %v, want nil", got)
	}
}
