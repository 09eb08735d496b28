// Package loading implements the splash scene shown while background
// images decode.
package loading

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dreamroom/internal/application/scene"
	"github.com/younwookim/dreamroom/internal/domain/ui"
	"github.com/younwookim/dreamroom/internal/infrastructure/assets"
	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
	"github.com/younwookim/dreamroom/internal/infrastructure/render"
)

// Progress is the read side of the asset store
type Progress interface {
	Ready() bool
	Progress() float64
	Stats() assets.Stats
}

const (
	barMaxWidth = 480
	barHeight   = 12
)

var (
	barTrack = color.NRGBA{255, 255, 255, 46}
	barFill  = color.NRGBA{255, 255, 255, 217}
)

// Scene waits for the asset store and then hands off to next
type Scene struct {
	store  Progress
	next   scene.Scene
	frames int
	log    *slog.Logger
}

var _ scene.Scene = (*Scene)(nil)

// New creates a loading scene that switches to next once store is ready
func New(store Progress, next scene.Scene, log *slog.Logger) *Scene {
	return &Scene{
		store: store,
		next:  next,
		log:   logger.OrDefault(log),
	}
}

// Update polls the store once per frame
func (s *Scene) Update(_ float64) (scene.Scene, error) {
	s.frames++
	if !s.store.Ready() {
		return nil, nil
	}

	st := s.store.Stats()
	s.log.Info("assets ready",
		"loaded", st.Loaded,
		"failed", st.Failed,
		"frames", s.frames)
	return s.next, nil
}

// Draw paints a centered progress bar
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := screen.Bounds()
	track := BarRect(float64(b.Dx()), float64(b.Dy()))
	render.FillRoundRect(screen, track, barHeight/2, barTrack)

	fill := track
	fill.W = track.W * ui.Clamp(s.store.Progress(), 0, 1)
	render.FillRoundRect(screen, fill, barHeight/2, barFill)
}

// BarRect is the progress track for a canvas of cw x ch
func BarRect(cw, ch float64) ui.Rect {
	w := math.Min(barMaxWidth, cw*0.5)
	return ui.Rect{
		X: (cw - w) / 2,
		Y: (ch - barHeight) / 2,
		W: w,
		H: barHeight,
	}
}

// OnEnter implements scene.Scene
func (s *Scene) OnEnter() {
	s.log.Debug("loading assets")
}

// OnExit implements scene.Scene
func (s *Scene) OnExit() {}
