package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"go.creack.net/hellopiston/render"
	"go.creack.net/hellopiston/scene"
)

// stampLabel draws the given text near the bottom-left corner,
// baseline a small margin above the edge.
func stampLabel(img *image.RGBA, label string) {
	const margin = 5

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(margin * 64),
			Y: fixed.Int26_6((img.Bounds().Max.Y - margin) * 64),
		},
	}
	d.DrawString(label)
}

func run(output string, scale int, label bool) error {
	w := scene.DemoWindow()

	canvas := render.NewImageCanvas(w.Width, w.Height)
	render.Frame(canvas, scene.Demo())

	img := canvas.Image()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, w.Width*scale, w.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	if label {
		stampLabel(img, fmt.Sprintf("%s %dx%d", w.Title, w.Width, w.Height))
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", output, err)
	}

	return nil
}

func main() {
	log.SetFlags(0)
	output := flag.String("o", "hellopiston.png", "output file")
	scale := flag.Int("scale", 1, "integer upscale factor")
	label := flag.Bool("label", false, "stamp the window title and size on the frame")
	flag.Parse()

	if *scale < 1 {
		tmp := strings.Split(os.Args[0], "/")
		binName := tmp[len(tmp)-1]
		fmt.Fprintf(os.Stderr, "usage: %s [options]\n", binName)
		flag.PrintDefaults()
		return
	}

	if err := run(*output, *scale, *label); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
