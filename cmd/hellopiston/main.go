// Package main is the entry point of the program.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go.creack.net/hellopiston/render"
	"go.creack.net/hellopiston/scene"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// screenCanvas adapts the current frame's image to render.Canvas.
type screenCanvas struct {
	screen *ebiten.Image
}

func (sc screenCanvas) Clear(c scene.Color) {
	sc.screen.Fill(c.NRGBA())
}

func (sc screenCanvas) FillRect(b scene.Box) {
	if b.Rect.Empty() {
		return
	}
	vector.DrawFilledRect(sc.screen,
		float32(b.Rect.X), float32(b.Rect.Y),
		float32(b.Rect.W), float32(b.Rect.H),
		b.Color.NRGBA(), false)
}

// Game implements ebiten.Game interface.
type Game struct {
	window scene.Window
	scene  scene.Scene

	debug bool
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.window.ExitOnEsc && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	return nil
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	render.Frame(screenCanvas{screen: screen}, g.scene)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	textOp := &text.DrawOptions{}
	textOp.LineSpacing = fontFace.Metrics().HLineGap + fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	textOp.ColorScale.ScaleWithColor(color.RGBA{A: 255})

	msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
	text.Draw(screen, msg, fontFace, textOp)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
// If you don't have to adjust the screen size with the outside size, just return a fixed size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.window.Width, g.window.Height
}

func main() {
	w := scene.DemoWindow()

	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &Game{
		window: w,
		scene:  scene.Demo(),
	}

	// The window and its GL context are constructed by RunGame; any
	// construction failure is fatal. Closing the window or pressing
	// escape ends the loop with a nil error.
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
