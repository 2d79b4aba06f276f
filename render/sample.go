package render

import (
	"image"
	"image/color"
)

// Downsample maps a rendered frame onto a cols x rows cell grid by
// sampling the pixel at the center of each cell. The result is indexed
// [row][col]. Used by the terminal viewer, where one cell stands for a
// block of pixels.
func Downsample(img image.Image, cols, rows int) [][]color.NRGBA {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	grid := make([][]color.NRGBA, rows)
	for r := range grid {
		grid[r] = make([]color.NRGBA, cols)
		y := b.Min.Y + (2*r+1)*b.Dy()/(2*rows)
		for c := range grid[r] {
			x := b.Min.X + (2*c+1)*b.Dx()/(2*cols)
			grid[r][c] = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		}
	}
	return grid
}
