package render

import (
	"image"
	"image/draw"

	"go.creack.net/hellopiston/scene"
)

// ImageCanvas rasterizes frames into an RGBA image. It is the headless
// render target used by the snapshot tool, the terminal viewer and tests.
type ImageCanvas struct {
	img *image.RGBA
}

func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Clear replaces every pixel with the given color.
func (ic *ImageCanvas) Clear(c scene.Color) {
	draw.Draw(ic.img, ic.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// FillRect blends the box over the image, clipped to the image bounds.
func (ic *ImageCanvas) FillRect(b scene.Box) {
	if b.Rect.Empty() {
		return
	}
	draw.Draw(ic.img, b.Rect.ImageRect(), image.NewUniform(b.Color.NRGBA()), image.Point{}, draw.Over)
}

// Image returns the backing image.
func (ic *ImageCanvas) Image() *image.RGBA {
	return ic.img
}
