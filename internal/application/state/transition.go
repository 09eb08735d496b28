package state

// DefaultFadeSpeed is the fade rate in units of opacity per second
const DefaultFadeSpeed = 1.8

// Phase is the coarse state of a Transition
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "unknown"
	}
}

// Transition is the black fade that brackets every scene change.
//
// It fades out (dir +1) until fully black, hands the next scene to the caller
// exactly once, then fades back in (dir -1). At rest fade, dir and next are zero.
// A transition cannot be interrupted or restarted while it is running.
type Transition struct {
	active bool
	fade   float64
	dir    int
	next   Scene
	speed  float64
}

// NewTransition creates an idle transition with the given fade speed.
// Non-positive speeds fall back to DefaultFadeSpeed.
func NewTransition(speed float64) Transition {
	if speed <= 0 {
		speed = DefaultFadeSpeed
	}
	return Transition{speed: speed}
}

// Begin starts fading out toward next.
// Returns false and changes nothing if a transition is already running.
func (t *Transition) Begin(next Scene) bool {
	if t.active {
		return false
	}
	t.active = true
	t.next = next
	t.dir = 1
	return true
}

// Step advances the fade by dt seconds.
// When the fade-out completes it returns the scene to commit and true; this
// happens exactly once per transition. All other calls return false.
func (t *Transition) Step(dt float64) (Scene, bool) {
	if !t.active {
		return 0, false
	}
	if dt < 0 {
		dt = 0
	}

	speed := t.speed
	if speed <= 0 {
		speed = DefaultFadeSpeed
	}

	t.fade += float64(t.dir) * speed * dt
	if t.fade > 1 {
		t.fade = 1
	} else if t.fade < 0 {
		t.fade = 0
	}

	if t.fade >= 1 && t.dir == 1 {
		t.dir = -1
		return t.next, true
	}

	if t.fade <= 0 && t.dir == -1 {
		t.active = false
		t.dir = 0
		t.next = 0
	}
	return 0, false
}

// Active reports whether a transition is running
func (t Transition) Active() bool {
	return t.active
}

// Fade returns the overlay opacity in [0, 1]
func (t Transition) Fade() float64 {
	return t.fade
}

// Dir returns +1 while fading out, -1 while fading in and 0 at rest
func (t Transition) Dir() int {
	return t.dir
}

// Next returns the target scene; ok is false when idle
func (t Transition) Next() (Scene, bool) {
	return t.next, t.active
}

// Speed returns the configured fade speed
func (t Transition) Speed() float64 {
	return t.speed
}

// Phase returns the coarse state of the transition
func (t Transition) Phase() Phase {
	switch {
	case !t.active:
		return PhaseIdle
	case t.dir > 0:
		return PhaseFadingOut
	default:
		return PhaseFadingIn
	}
}
