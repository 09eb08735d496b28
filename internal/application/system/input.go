package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// Pointer is the host-side input state shared with scenes.
//
// Clicks go through a single-slot mailbox: a newer click overwrites one that
// has not been consumed yet, and TakeClick empties the slot.
type Pointer struct {
	click    ui.Point
	hasClick bool

	keys map[ebiten.Key]bool
}

// NewPointer creates an empty pointer state
func NewPointer() *Pointer {
	return &Pointer{keys: make(map[ebiten.Key]bool)}
}

// Capture reads this tick's mouse, touch and keyboard state from ebiten.
// Returns true if a new click or tap was stored.
func (p *Pointer) Capture() bool {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		p.keys[k] = true
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		p.keys[k] = false
	}

	// Touch first so mobile taps are not shadowed by a stale cursor
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		p.Push(float64(x), float64(y))
		return true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p.Push(float64(mx), float64(my))
		return true
	}
	return false
}

// Push stores a click, replacing any unconsumed one
func (p *Pointer) Push(x, y float64) {
	p.click = ui.Point{X: x, Y: y}
	p.hasClick = true
}

// PeekClick returns the pending click without consuming it
func (p *Pointer) PeekClick() (ui.Point, bool) {
	return p.click, p.hasClick
}

// TakeClick returns the pending click and clears the slot
func (p *Pointer) TakeClick() (ui.Point, bool) {
	if !p.hasClick {
		return ui.Point{}, false
	}
	c := p.click
	p.click = ui.Point{}
	p.hasClick = false
	return c, true
}

// SetKey records a key state
func (p *Pointer) SetKey(k ebiten.Key, down bool) {
	p.keys[k] = down
}

// IsKeyDown reports whether k is currently held
func (p *Pointer) IsKeyDown(k ebiten.Key) bool {
	return p.keys[k]
}
