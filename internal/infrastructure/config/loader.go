package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads UI configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadUI loads ui.yaml, fills defaults and validates the result
func (l *Loader) LoadUI() (*UIConfig, error) {
	data, err := fs.ReadFile(l.fsys, "ui.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/ui.yaml: %w", l.basePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.normalizeText()
	return cfg, nil
}

// normalizeText converts user-facing strings to NFC so a composed and a
// decomposed accent measure and wrap the same way
func (c *UIConfig) normalizeText() {
	c.Display.Title = norm.NFC.String(c.Display.Title)
	for _, m := range []*ModalConfig{&c.Modals.Help, &c.Modals.Credits} {
		m.Title = norm.NFC.String(m.Title)
		m.Body = norm.NFC.String(m.Body)
	}
}

// Default returns the built-in configuration.
// Fields missing from ui.yaml keep these values.
func Default() *UIConfig {
	return &UIConfig{
		Display: DisplayConfig{
			Width:     1280,
			Height:    720,
			Resizable: true,
			TPS:       60,
			Title:     "Daydream",
		},
		Clock:      ClockConfig{MaxStep: 0.05},
		Transition: TransitionConfig{FadeSpeed: 1.8},
		Assets: AssetsConfig{
			BasePath:        "assets",
			LoadConcurrency: 4,
			Backgrounds: BackgroundsConfig{
				MenuDay:   "DayDream.png",
				MenuNight: "NightDream.png",
				RoomDay:   "DaydreamRoom.png",
				RoomNight: "NightDreamRoom.png",
				Dream:     "newDream.png",
			},
		},
		Music: MusicConfig{
			SampleRate: 48000,
			Volume:     0.55,
			Tracks: map[string]string{
				"menu":  "Oneironaut.mp3",
				"dream": "Lucid_Journey.mp3",
			},
		},
		Modals: ModalsConfig{
			Help:    ModalConfig{Title: "Help", FontSize: 16, Body: defaultHelpBody},
			Credits: ModalConfig{Title: "Credits", FontSize: 22, Body: defaultCreditsBody},
		},
	}
}

// Validate checks value ranges
func (c *UIConfig) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Display.TPS)
	case c.Clock.MaxStep <= 0:
		return fmt.Errorf("%w: clock.maxStep %v", ErrInvalidConfig, c.Clock.MaxStep)
	case c.Transition.FadeSpeed <= 0:
		return fmt.Errorf("%w: transition.fadeSpeed %v", ErrInvalidConfig, c.Transition.FadeSpeed)
	case c.Assets.LoadConcurrency <= 0:
		return fmt.Errorf("%w: assets.loadConcurrency %d", ErrInvalidConfig, c.Assets.LoadConcurrency)
	case c.Music.Volume < 0 || c.Music.Volume > 1:
		return fmt.Errorf("%w: music.volume %v outside [0, 1]", ErrInvalidConfig, c.Music.Volume)
	case c.Music.SampleRate <= 0:
		return fmt.Errorf("%w: music.sampleRate %d", ErrInvalidConfig, c.Music.SampleRate)
	case c.Modals.Help.FontSize <= 0 || c.Modals.Credits.FontSize <= 0:
		return fmt.Errorf("%w: modal font sizes must be positive", ErrInvalidConfig)
	}

	for _, p := range c.Assets.Backgrounds.Paths() {
		if p == "" {
			return fmt.Errorf("%w: every background path must be set", ErrInvalidConfig)
		}
	}
	return nil
}
