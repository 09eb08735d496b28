package replay

// Version is written into every recording
const Version = "2.0"

// FrameInput records what the loop saw on a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Clamped delta time (seconds)
	W  int     `json:"w"`           // Canvas width
	H  int     `json:"h"`           // Canvas height
	C  bool    `json:"c,omitempty"` // Click pending
	X  float64 `json:"x,omitempty"` // Click X
	Y  float64 `json:"y,omitempty"` // Click Y
}

// ReplayData contains all data needed to replay a UI session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
