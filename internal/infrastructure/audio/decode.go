package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
)

// LoadTracks decodes one looping player per mode from fsys.
// files maps a mode name ("menu", "dream") to a file path. Unknown modes and
// unreadable files are logged and skipped so the game runs without them.
func LoadTracks(ctx *ebaudio.Context, fsys fs.FS, files map[string]string, log *slog.Logger) map[Mode]Player {
	log = logger.OrDefault(log)
	tracks := make(map[Mode]Player, len(files))

	for name, file := range files {
		mode, err := ParseMode(name)
		if err != nil {
			log.Warn("skipping music track", "name", name, "err", err)
			continue
		}

		player, err := loadLoop(ctx, fsys, file)
		if err != nil {
			log.Error("failed to load music track", "mode", mode, "path", file, "err", err)
			continue
		}
		tracks[mode] = player
	}
	return tracks
}

// loadLoop decodes the fs.FS file name into an infinitely looping player
func loadLoop(ctx *ebaudio.Context, fsys fs.FS, name string) (*ebaudio.Player, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", name, err)
	}
	defer f.Close()

	// Keep the bytes in memory so the stream can seek after the file is closed
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	reader := bytes.NewReader(data)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch ext := trackFormat(name); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", name, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	loop := ebaudio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}
	return player, nil
}

// trackFormat returns the lower-case extension of an fs.FS file name.
// fs.FS names always use forward slashes.
func trackFormat(name string) string {
	return strings.ToLower(path.Ext(name))
}
