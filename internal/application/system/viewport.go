package system

// Viewport is the canvas size scenes lay themselves out against.
// A resizable viewport follows the window; a fixed one keeps its initial size.
type Viewport struct {
	width     int
	height    int
	resizable bool
}

// NewViewport creates a viewport of the given size
func NewViewport(width, height int, resizable bool) *Viewport {
	return &Viewport{width: width, height: height, resizable: resizable}
}

// Size returns the canvas size in pixels
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Resizable reports whether the viewport follows the window
func (v *Viewport) Resizable() bool {
	return v.resizable
}

// Resize updates the size when the viewport is resizable.
// Non-positive sizes are ignored (minimized windows report 0x0).
func (v *Viewport) Resize(width, height int) {
	if !v.resizable || width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
}
