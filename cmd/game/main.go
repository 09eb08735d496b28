package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/dreamroom/internal/application/game"
	"github.com/younwookim/dreamroom/internal/application/replay"
	"github.com/younwookim/dreamroom/internal/application/scene/loading"
	"github.com/younwookim/dreamroom/internal/application/scene/menuroom"
	"github.com/younwookim/dreamroom/internal/application/system"
	"github.com/younwookim/dreamroom/internal/infrastructure/assets"
	"github.com/younwookim/dreamroom/internal/infrastructure/audio"
	"github.com/younwookim/dreamroom/internal/infrastructure/config"
	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
	"github.com/younwookim/dreamroom/internal/infrastructure/render"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load ui.yaml from this directory instead of the embedded copy")
	assetsDir := flag.String("assets", "", "Directory with background images and music (default: assets.basePath)")
	logLevel := flag.String("log-level", envOr("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and log the final state")
	flag.Parse()

	if err := logger.InitLogger(*logLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	lg := logger.GetLogger()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		summary := RunReplay(data, cfg, lg)
		summary.Log(lg)
		return
	}

	root := cfg.Assets.BasePath
	if *assetsDir != "" {
		root = *assetsDir
	}
	if err := run(cfg, os.DirFS(root), recordName(*recordFlag), lg); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads ui.yaml from dir, or from the embedded configs when dir is empty
func loadConfig(dir string) (*config.UIConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadUI()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadUI()
}

func run(cfg *config.UIConfig, assetFS fs.FS, recordFilename string, lg *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backgrounds decode in the background while the splash is shown
	store := assets.NewStore(assetFS, cfg.Assets.LoadConcurrency, lg)
	for _, p := range cfg.Assets.Backgrounds.Paths() {
		store.Queue(p)
	}
	store.LoadAll(ctx)

	audioCtx := ebaudio.NewContext(cfg.Music.SampleRate)
	tracks := audio.LoadTracks(audioCtx, assetFS, cfg.Music.Tracks, lg)
	music := audio.NewMusicSwitch(tracks, cfg.Music.Volume, lg)

	fonts, err := render.LoadFonts()
	if err != nil {
		return err
	}

	pointer := system.NewPointer()
	viewport := system.NewViewport(cfg.Display.Width, cfg.Display.Height, cfg.Display.Resizable)

	controller := menuroom.New(menuroom.Deps{
		Assets: store,
		Music:  music,
		Clicks: pointer,
		Size:   viewport,
		Fonts:  fonts,
		Log:    lg,
	}, menuroom.ConfigFromUI(cfg))

	g := game.New(loading.New(store, controller, lg), viewport)
	g.SetClock(system.NewClock(cfg.Clock.MaxStep))
	g.SetInput(pointer)
	g.OnInteract(music.Unlock)

	var recorder *replay.Recorder
	if recordFilename != "" {
		recorder = replay.NewRecorder()
		g.SetRecorder(recorder, controller)
		lg.Info("recording enabled", "file", recordFilename)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(recordFilename); err != nil {
			lg.Error("failed to save recording", "file", recordFilename, "err", err)
		} else {
			lg.Info("recording saved", "file", recordFilename, "frames", recorder.FrameCount())
		}
	}
	return runErr
}

// recordName resolves the -record flag; "auto" picks a timestamped file name
func recordName(flagValue string) string {
	if flagValue == "auto" {
		return replay.GenerateFilename()
	}
	return flagValue
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
