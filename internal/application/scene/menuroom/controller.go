// Package menuroom implements the menu, bedroom and dream screens: a single
// controller that owns scene, theme, modal and fade state, dispatches one
// click per frame and paints the canvas.
package menuroom

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dreamroom/internal/application/scene"
	"github.com/younwookim/dreamroom/internal/application/state"
	"github.com/younwookim/dreamroom/internal/domain/ui"
	"github.com/younwookim/dreamroom/internal/infrastructure/audio"
	"github.com/younwookim/dreamroom/internal/infrastructure/config"
	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
	"github.com/younwookim/dreamroom/internal/infrastructure/render"
)

// AssetSource returns a loaded image, or nil when path is not loaded
type AssetSource interface {
	Get(path string) *ebiten.Image
}

// MusicSwitcher changes the background track
type MusicSwitcher interface {
	SetMode(mode audio.Mode)
}

// ClickSource hands out the pending click at most once
type ClickSource interface {
	TakeClick() (ui.Point, bool)
}

// SizeSource reports the current canvas size in pixels
type SizeSource interface {
	Size() (int, int)
}

// Deps are the services the controller talks to.
// Fonts may be nil, in which case no text is drawn.
type Deps struct {
	Assets AssetSource
	Music  MusicSwitcher
	Clicks ClickSource
	Size   SizeSource
	Fonts  *render.Fonts
	Log    *slog.Logger
}

// Config holds the data-driven parts of the screens
type Config struct {
	Backgrounds config.BackgroundsConfig
	Help        config.ModalConfig
	Credits     config.ModalConfig
	FadeSpeed   float64
}

// ConfigFromUI extracts the controller settings from the loaded UI config
func ConfigFromUI(cfg *config.UIConfig) Config {
	return Config{
		Backgrounds: cfg.Assets.Backgrounds,
		Help:        cfg.Modals.Help,
		Credits:     cfg.Modals.Credits,
		FadeSpeed:   cfg.Transition.FadeSpeed,
	}
}

// Controller is the menu/room/dream scene
type Controller struct {
	assets AssetSource
	music  MusicSwitcher
	clicks ClickSource
	size   SizeSource
	fonts  *render.Fonts
	log    *slog.Logger

	cfg Config

	scene      state.Scene
	theme      state.Theme
	modal      state.Modal
	transition state.Transition

	layout ui.Layout
	cw, ch float64
}

var _ scene.Scene = (*Controller)(nil)

// New creates a controller at scene=menu, theme=day, no modal, no transition
func New(deps Deps, cfg Config) *Controller {
	c := &Controller{
		assets:     deps.Assets,
		music:      deps.Music,
		clicks:     deps.Clicks,
		size:       deps.Size,
		fonts:      deps.Fonts,
		log:        logger.OrDefault(deps.Log),
		cfg:        cfg,
		scene:      state.SceneMenu,
		theme:      state.ThemeDay,
		modal:      state.ModalNone,
		transition: state.NewTransition(cfg.FadeSpeed),
	}
	c.relayout()
	return c
}

// OnEnter implements scene.Scene.
// A click left over from the previous scene is discarded.
func (c *Controller) OnEnter() {
	if c.clicks != nil {
		if p, ok := c.clicks.TakeClick(); ok {
			c.log.Debug("dropped click from previous scene", "x", p.X, "y", p.Y)
		}
	}
	c.log.Info("menu room entered", "scene", c.scene, "theme", c.theme)
}

// OnExit implements scene.Scene
func (c *Controller) OnExit() {}

// Update recomputes the layout, consumes at most one click and advances
// the fade. The controller never hands off to another scene.
func (c *Controller) Update(dt float64) (scene.Scene, error) {
	c.relayout()

	if c.clicks != nil {
		if p, ok := c.clicks.TakeClick(); ok {
			c.HandleClick(p)
		}
	}

	if swapped, ok := c.transition.Step(dt); ok {
		c.log.Debug("scene swapped", "from", c.scene, "to", swapped)
		c.scene = swapped
	}
	return nil, nil
}

func (c *Controller) relayout() {
	if c.size == nil {
		return
	}
	w, h := c.size.Size()
	c.cw, c.ch = float64(w), float64(h)
	c.layout = ui.ComputeLayout(c.cw, c.ch)
}

// HandleClick applies the first matching rule for a click at p
func (c *Controller) HandleClick(p ui.Point) {
	l := c.layout

	switch c.modal {
	case state.ModalCredits:
		c.dismissModal(p, l.CreditsPanel, l.CreditsClose)
		return
	case state.ModalHelp:
		c.dismissModal(p, l.HelpPanel, l.HelpClose)
		return
	}

	if c.scene == state.SceneDream {
		if l.Back.Contains(p) && c.transitionTo(state.SceneRoom) {
			c.setMusic(audio.ModeMenu)
		}
		return
	}

	if l.Toggle.Contains(p) {
		c.theme = c.theme.Toggle()
		c.log.Debug("theme toggled", "theme", c.theme)
		return
	}

	if c.transition.Active() {
		return
	}

	switch c.scene {
	case state.SceneMenu:
		if l.Start.Contains(p) {
			c.transitionTo(state.SceneRoom)
		}
	case state.SceneRoom:
		c.handleRoomClick(p)
	}
}

func (c *Controller) handleRoomClick(p ui.Point) {
	l := c.layout

	switch {
	case l.Back.Contains(p):
		c.transitionTo(state.SceneMenu)
	case l.NewDream.Contains(p):
		if c.transitionTo(state.SceneDream) {
			c.setMusic(audio.ModeDream)
		}
		c.modal = state.ModalNone
	case l.LoadDream.Contains(p):
		c.log.Debug("load dream is not available yet")
	case l.Help.Contains(p):
		c.modal = state.ModalHelp
	case l.Credits.Contains(p):
		c.modal = state.ModalCredits
	}
}

// dismissModal closes the open modal on a close-button or outside click.
// Clicks inside the panel are swallowed.
func (c *Controller) dismissModal(p ui.Point, panel, closeBtn ui.Rect) {
	if closeBtn.Contains(p) || !panel.Contains(p) {
		c.log.Debug("modal closed", "modal", c.modal)
		c.modal = state.ModalNone
	}
}

// transitionTo starts a fade to next and closes any modal.
// It reports false when a fade is already running or the edge does not exist.
func (c *Controller) transitionTo(next state.Scene) bool {
	if !c.scene.CanTransitionTo(next) {
		c.log.Warn("rejected scene transition", "from", c.scene, "to", next)
		return false
	}
	if !c.transition.Begin(next) {
		return false
	}
	c.modal = state.ModalNone
	c.log.Debug("transition started", "from", c.scene, "to", next)
	return true
}

func (c *Controller) setMusic(mode audio.Mode) {
	if c.music != nil {
		c.music.SetMode(mode)
	}
}

// Scene returns the visible scene
func (c *Controller) Scene() state.Scene { return c.scene }

// Theme returns the current theme
func (c *Controller) Theme() state.Theme { return c.theme }

// Modal returns the open modal
func (c *Controller) Modal() state.Modal { return c.modal }

// Transition returns a copy of the fade state
func (c *Controller) Transition() state.Transition { return c.transition }

// Layout returns the rectangles computed on the last update
func (c *Controller) Layout() ui.Layout { return c.layout }
