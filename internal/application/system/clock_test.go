package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTime is a manually advanced wall clock
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock_Tick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(0.05, ft.now)

	ft.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), 1e-9)

	ft.advance(20 * time.Millisecond)
	assert.InDelta(t, 0.020, c.Tick(), 1e-9)

	assert.InDelta(t, 0.036, c.GameTime(), 1e-9)
}

func TestClock_ClampsStalls(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(0.05, ft.now)

	// Tab was in the background for ten seconds
	ft.advance(10 * time.Second)
	assert.Equal(t, 0.05, c.Tick())
	assert.Equal(t, 0.05, c.GameTime())
}

func TestClock_NegativeDeltaIsZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(0.05, ft.now)

	ft.advance(-time.Second)
	assert.Equal(t, 0.0, c.Tick())
}

func TestClock_SameInstantIsZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(0.05, ft.now)
	assert.Equal(t, 0.0, c.Tick())
}

func TestNewClock_DefaultMaxStep(t *testing.T) {
	assert.Equal(t, DefaultMaxStep, NewClock(0).MaxStep())
	assert.Equal(t, DefaultMaxStep, NewClock(-1).MaxStep())
	assert.Equal(t, 0.1, NewClock(0.1).MaxStep())
}
