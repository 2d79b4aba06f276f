package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/hellopiston/render"
	"go.creack.net/hellopiston/scene"
)

// Terminal cells are taller than they are wide, so the frame is
// downsampled to a wide, short grid.
const gridCols, gridRows = 80, 24

func NewGame(ctx context.Context) *Game {
	app := tview.NewApplication().EnableMouse(true)

	newTextView := func(text string) *tview.TextView {
		return tview.NewTextView().
			SetDynamicColors(true).
			SetText(text)
	}

	w := scene.DemoWindow()

	frameView := tview.NewTable().SetBorders(false)

	logsView := newTextView("")
	logsView.SetTitle("Logs").SetBorder(true)
	logsView.ScrollToEnd()

	stateView := newTextView("Settings")
	stateView.SetTitle("Settings").SetBorder(true)

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow)
	rightPane.
		AddItem(stateView, 0, 1, false).
		AddItem(logsView, 0, 2, false)

	framePane := tview.NewFlex()
	framePane.SetBorder(true)
	framePane.SetTitle(w.Title)
	framePane.AddItem(frameView, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(framePane, 0, 3, true).
		AddItem(rightPane, 0, 1, false)

	ctx, cancel := context.WithCancel(ctx)

	return &Game{
		app: app,

		root: flex,

		frameView: frameView,
		stateView: stateView,
		logsView:  logsView,

		window: w,
		scene:  scene.Demo(),
		canvas: render.NewImageCanvas(w.Width, w.Height),

		ctx:    ctx,
		cancel: cancel,
	}
}

type Game struct {
	app *tview.Application

	root *tview.Flex

	frameView *tview.Table
	stateView tview.Primitive
	logsView  *tview.TextView

	window scene.Window
	scene  scene.Scene
	canvas *render.ImageCanvas

	grid  [][]color.NRGBA
	frame int
	dirty bool

	paused   bool
	pausedMu sync.Mutex

	nextStep   bool
	nextStepMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
}

func (g *Game) Stop() {
	g.app.Stop()
	g.cancel()
}

func (g *Game) Init() {
	f := func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			g.Stop()
			return nil
		}
		switch event.Rune() {
		case 'n':
			g.nextStepMu.Lock()
			g.nextStep = true
			g.nextStepMu.Unlock()
			return nil
		case ' ':
			g.pausedMu.Lock()
			g.paused = !g.paused
			g.pausedMu.Unlock()
			return nil
		case 'q':
			g.Stop()
			return nil
		}
		return event
	}
	g.root.SetInputCapture(f)
}

func (g *Game) Update() error {
	isPaused := func() bool {
		g.pausedMu.Lock()
		defer g.pausedMu.Unlock()
		return g.paused
	}
	forceNextStep := func() bool {
		g.nextStepMu.Lock()
		defer g.nextStepMu.Unlock()
		if g.nextStep {
			g.nextStep = false
			return true
		}
		return false
	}
	if !forceNextStep() && isPaused() {
		return nil
	}

	render.Frame(g.canvas, g.scene)
	grid := render.Downsample(g.canvas.Image(), gridCols, gridRows)
	if grid == nil {
		return fmt.Errorf("failed to downsample frame to %dx%d", gridCols, gridRows)
	}
	g.grid = grid
	g.frame++
	g.dirty = true

	return nil
}

func (g *Game) drawFrame() {
	for r, row := range g.grid {
		for c, cc := range row {
			cell := tview.NewTableCell("  ").
				SetBackgroundColor(tcell.NewRGBColor(int32(cc.R), int32(cc.G), int32(cc.B)))
			g.frameView.SetCell(r, c, cell)
		}
	}
}

func (g *Game) drawState() {
	sv := g.stateView.(*tview.TextView)
	sv.Clear()

	fmt.Fprintf(sv, "Title: %s\n", g.window.Title)
	fmt.Fprintf(sv, "Size: %dx%d\n", g.window.Width, g.window.Height)
	fmt.Fprintf(sv, "Exit on esc: %t\n", g.window.ExitOnEsc)
	fmt.Fprintf(sv, "Grid: %dx%d\n", gridCols, gridRows)
	fmt.Fprintf(sv, "Background: %s\n", g.scene.Background)
	for i, b := range g.scene.Boxes {
		fmt.Fprintf(sv, "Box %d: %s %s\n", i, b.Rect, b.Color)
	}
	fmt.Fprintf(sv, "Frames: %d\n", g.frame)
}

func (g *Game) Draw() {
	g.drawFrame()
	g.drawState()

	if g.dirty {
		g.dirty = false
		fmt.Fprintf(g.logsView, "frame %d: clear %s, fill %d box(es)\n", g.frame, g.scene.Background, len(g.scene.Boxes))
	}
}

func main() {
	g := NewGame(context.Background())

	g.Init()
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		defer func() {
			if e := recover(); e != nil {
				g.app.Stop()
				log.Printf("Recovered from panic: %v", e)
				debug.PrintStack()
			}
		}()
	loop:
		if err := g.Update(); err != nil {
			log.Printf("failed to update: %s", err)
		}

		g.app.QueueUpdateDraw(func() {
			g.Draw()
		})

		select {
		case <-ticker.C:
		case <-g.ctx.Done():
			g.Stop()
			return
		}
		goto loop
	}()

	if err := g.app.SetRoot(g.root, true).SetFocus(g.root).Run(); err != nil {
		panic(err)
	}
	log.Printf("Done")
}
