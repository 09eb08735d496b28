package main

import (
	"log/slog"

	"github.com/younwookim/dreamroom/internal/application/replay"
	"github.com/younwookim/dreamroom/internal/application/scene/menuroom"
	"github.com/younwookim/dreamroom/internal/application/state"
	"github.com/younwookim/dreamroom/internal/application/system"
	"github.com/younwookim/dreamroom/internal/infrastructure/audio"
	"github.com/younwookim/dreamroom/internal/infrastructure/config"
)

// ReplaySummary is the controller state after the last recorded frame
type ReplaySummary struct {
	Frames        int
	Clicks        int
	Scene         state.Scene
	Theme         state.Theme
	Modal         state.Modal
	Transitioning bool
	Fade          float64
	Music         audio.Mode
	MusicStarted  bool
}

// Log writes the summary at info level
func (s ReplaySummary) Log(lg *slog.Logger) {
	lg.Info("replay finished",
		"frames", s.Frames,
		"clicks", s.Clicks,
		"scene", s.Scene,
		"theme", s.Theme,
		"modal", s.Modal,
		"transitioning", s.Transitioning,
		"fade", s.Fade,
		"music", s.Music,
		"musicStarted", s.MusicStarted)
}

// RunReplay drives the menu/room controller with recorded frames, without a
// window, images or audio output.
func RunReplay(data *replay.ReplayData, cfg *config.UIConfig, lg *slog.Logger) ReplaySummary {
	pointer := system.NewPointer()
	viewport := system.NewViewport(cfg.Display.Width, cfg.Display.Height, true)
	music := audio.NewMusicSwitch(nil, cfg.Music.Volume, lg)

	controller := menuroom.New(menuroom.Deps{
		Music:  music,
		Clicks: pointer,
		Size:   viewport,
		Log:    lg,
	}, menuroom.ConfigFromUI(cfg))

	// Recordings start once the controller is current, as in the live game
	controller.OnEnter()

	r := replay.NewReplayer(*data)
	clicks := 0
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}

		viewport.Resize(in.W, in.H)
		if in.C {
			pointer.Push(in.X, in.Y)
			music.Unlock()
			clicks++
		}

		if _, err := controller.Update(in.DT); err != nil {
			lg.Error("replay stopped", "frame", in.F, "err", err)
			break
		}
	}

	tr := controller.Transition()
	return ReplaySummary{
		Frames:        r.CurrentFrame(),
		Clicks:        clicks,
		Scene:         controller.Scene(),
		Theme:         controller.Theme(),
		Modal:         controller.Modal(),
		Transitioning: tr.Active(),
		Fade:          tr.Fade(),
		Music:         music.Mode(),
		MusicStarted:  music.Started(),
	}
}
