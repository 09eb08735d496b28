// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dreamroom/internal/application/scene"
	"github.com/younwookim/dreamroom/internal/application/system"
	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// Ticker supplies the per-frame delta time
type Ticker interface {
	Tick() float64
}

// Input captures pointer state once per frame
type Input interface {
	// Capture reads the device and reports whether a new click arrived
	Capture() bool
	PeekClick() (ui.Point, bool)
}

// FrameRecorder receives what the loop saw on each frame
type FrameRecorder interface {
	RecordFrame(dt float64, width, height int, click ui.Point, clicked bool)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current  scene.Scene
	viewport *system.Viewport
	clock    Ticker
	input    Input
	recorder FrameRecorder
	recordOn scene.Scene
	interact func()
	dt       float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, viewport *system.Viewport) *Game {
	g := &Game{
		current:  initialScene,
		viewport: viewport,
		dt:       1.0 / 60.0, // Used when no clock is attached
	}
	g.current.OnEnter()
	return g
}

// Update advances the clock, captures input and updates the current scene.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	dt := g.dt
	if g.clock != nil {
		dt = g.clock.Tick()
	}

	clicked := g.input != nil && g.input.Capture()
	if clicked && g.interact != nil {
		g.interact()
	}

	// Only clicks that arrived this frame are recorded, so a replay pushes
	// each click into the mailbox exactly once. Frames before the recorded
	// scene becomes current are skipped.
	if g.recording() {
		var click ui.Point
		if clicked {
			click, _ = g.input.PeekClick()
		}
		w, h := g.viewport.Size()
		g.recorder.RecordFrame(dt, w, h, click, clicked)
	}

	next, err := g.current.Update(dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout follows the window when the viewport is resizable and otherwise
// keeps the configured canvas size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Resize(outsideWidth, outsideHeight)
	return g.viewport.Size()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used when no clock is attached.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClock attaches a frame clock
func (g *Game) SetClock(c Ticker) {
	g.clock = c
}

// SetInput attaches the pointer captured at the start of every frame
func (g *Game) SetInput(in Input) {
	g.input = in
}

// SetRecorder records frames to r while target is the current scene.
// A nil target records every frame.
func (g *Game) SetRecorder(r FrameRecorder, target scene.Scene) {
	g.recorder = r
	g.recordOn = target
}

func (g *Game) recording() bool {
	if g.recorder == nil {
		return false
	}
	return g.recordOn == nil || g.current == g.recordOn
}

// OnInteract registers fn to run on every frame with a new click
func (g *Game) OnInteract(fn func()) {
	g.interact = fn
}
