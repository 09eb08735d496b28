package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder collects per-frame input for later replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder that is active immediately
func NewRecorder() *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one frame. Nothing is recorded after Stop.
func (r *Recorder) RecordFrame(dt float64, width, height int, click ui.Point, clicked bool) {
	if !r.recording {
		return
	}

	in := FrameInput{
		F:  r.frame,
		DT: dt,
		W:  width,
		H:  height,
	}
	if clicked {
		in.C = true
		in.X = click.X
		in.Y = click.Y
	}

	r.data.Frames = append(r.data.Frames, in)
	r.frame++
}

// Save writes the recording as indented JSON to filename
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Encode writes the recording to w
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
