// Package audio switches the looping background track between music modes.
package audio

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
)

// Mode selects which background track plays
type Mode int

const (
	ModeMenu Mode = iota
	ModeDream
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeDream:
		return "dream"
	default:
		return "unknown"
	}
}

// ParseMode converts a config name to a Mode
func ParseMode(name string) (Mode, error) {
	switch name {
	case "menu":
		return ModeMenu, nil
	case "dream":
		return ModeDream, nil
	default:
		return 0, fmt.Errorf("unknown music mode %q", name)
	}
}

// Player is the subset of *audio.Player the switch drives
type Player interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// MusicSwitch plays at most one looping track at a time.
//
// Nothing is audible until Unlock is called on the first user interaction;
// before that SetMode only remembers the requested mode.
type MusicSwitch struct {
	tracks  map[Mode]Player
	volume  float64
	mode    Mode
	started bool
	log     *slog.Logger
}

// NewMusicSwitch creates a switch over the given tracks. Modes without a
// track are silent. A nil logger uses the process logger.
func NewMusicSwitch(tracks map[Mode]Player, volume float64, log *slog.Logger) *MusicSwitch {
	if tracks == nil {
		tracks = make(map[Mode]Player)
	}
	return &MusicSwitch{
		tracks: tracks,
		volume: volume,
		mode:   ModeMenu,
		log:    logger.OrDefault(log),
	}
}

// Mode returns the most recently requested mode
func (m *MusicSwitch) Mode() Mode {
	return m.mode
}

// Started reports whether playback has been unlocked
func (m *MusicSwitch) Started() bool {
	return m.started
}

// SetMode stops the current track and starts the one for mode.
// Requesting the mode that is already playing does nothing.
func (m *MusicSwitch) SetMode(mode Mode) {
	m.mode = mode
	if !m.started {
		return
	}

	if p := m.tracks[mode]; p != nil && p.IsPlaying() {
		return
	}

	m.stopAll()
	m.play(mode)
}

// Unlock starts playback of the current mode. Only the first call has an effect.
func (m *MusicSwitch) Unlock() {
	if m.started {
		return
	}
	m.started = true
	m.log.Debug("music unlocked", "mode", m.mode)
	m.play(m.mode)
}

func (m *MusicSwitch) play(mode Mode) {
	p := m.tracks[mode]
	if p == nil {
		m.log.Debug("no track for music mode", "mode", mode)
		return
	}

	p.SetVolume(m.volume)
	if err := p.Rewind(); err != nil {
		m.log.Warn("failed to rewind track", "mode", mode, "err", err)
	}
	p.Play()
	m.log.Debug("playing music", "mode", mode, "volume", m.volume)
}

func (m *MusicSwitch) stopAll() {
	for mode, p := range m.tracks {
		p.Pause()
		if err := p.Rewind(); err != nil {
			m.log.Warn("failed to rewind track", "mode", mode, "err", err)
		}
	}
}
