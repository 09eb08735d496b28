package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Replayer hands recorded frames back in order
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}
