package state

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertIdle(t *testing.T, tr Transition) {
	t.Helper()
	assert.False(t, tr.Active())
	assert.Equal(t, 0.0, tr.Fade())
	assert.Equal(t, 0, tr.Dir())
	_, ok := tr.Next()
	assert.False(t, ok)
	assert.Equal(t, PhaseIdle, tr.Phase())
}

func TestNewTransition(t *testing.T) {
	tr := NewTransition(0)
	assert.Equal(t, DefaultFadeSpeed, tr.Speed())
	assertIdle(t, tr)

	assert.Equal(t, 3.0, NewTransition(3).Speed())
}

func TestTransition_FullCycle(t *testing.T) {
	tr := NewTransition(DefaultFadeSpeed)

	require.True(t, tr.Begin(SceneRoom))
	assert.True(t, tr.Active())
	assert.Equal(t, 1, tr.Dir())
	assert.Equal(t, PhaseFadingOut, tr.Phase())
	next, ok := tr.Next()
	assert.True(t, ok)
	assert.Equal(t, SceneRoom, next)

	// 0.05 * 1.8 = 0.09 per step: eleven steps stay below 1
	for i := 0; i < 11; i++ {
		_, swapped := tr.Step(0.05)
		require.False(t, swapped, "step %d", i)
	}
	assert.Less(t, tr.Fade(), 1.0)

	committed, swapped := tr.Step(0.05)
	require.True(t, swapped)
	assert.Equal(t, SceneRoom, committed)
	assert.Equal(t, 1.0, tr.Fade())
	assert.Equal(t, -1, tr.Dir())
	assert.Equal(t, PhaseFadingIn, tr.Phase())

	for i := 0; i < 11; i++ {
		_, swapped := tr.Step(0.05)
		require.False(t, swapped)
		require.True(t, tr.Active())
	}

	_, swapped = tr.Step(0.05)
	assert.False(t, swapped)
	assertIdle(t, tr)
}

func TestTransition_LargeStepClamps(t *testing.T) {
	tr := NewTransition(DefaultFadeSpeed)
	tr.Begin(SceneDream)

	next, swapped := tr.Step(10)
	assert.True(t, swapped)
	assert.Equal(t, SceneDream, next)
	assert.Equal(t, 1.0, tr.Fade())

	_, swapped = tr.Step(10)
	assert.False(t, swapped)
	assertIdle(t, tr)
}

func TestTransition_BeginWhileActiveIsRejected(t *testing.T) {
	tr := NewTransition(DefaultFadeSpeed)
	require.True(t, tr.Begin(SceneRoom))
	tr.Step(0.1)

	before := tr
	assert.False(t, tr.Begin(SceneMenu))
	assert.Equal(t, before, tr)

	next, _ := tr.Next()
	assert.Equal(t, SceneRoom, next)
}

func TestTransition_StepWhileIdleDoesNothing(t *testing.T) {
	tr := NewTransition(DefaultFadeSpeed)
	_, swapped := tr.Step(0.05)
	assert.False(t, swapped)
	assertIdle(t, tr)
}

func TestTransition_NegativeDeltaIsIgnored(t *testing.T) {
	tr := NewTransition(DefaultFadeSpeed)
	tr.Begin(SceneRoom)
	tr.Step(0.1)
	fade := tr.Fade()

	tr.Step(-1)
	assert.Equal(t, fade, tr.Fade())
	assert.Equal(t, PhaseFadingOut, tr.Phase())
}

func TestTransition_ZeroValueUsesDefaultSpeed(t *testing.T) {
	var tr Transition
	tr.Begin(SceneRoom)
	tr.Step(0.5)
	assert.InDelta(t, 0.9, tr.Fade(), 1e-9)
}

func TestTransition_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	deltas := gen.SliceOf(gen.Float64Range(0, 0.05))

	properties.Property("fade is monotonic within each phase and swaps at most once", prop.ForAll(
		func(dts []float64) bool {
			tr := NewTransition(DefaultFadeSpeed)
			tr.Begin(SceneRoom)

			swaps := 0
			for _, dt := range dts {
				prevFade, prevPhase := tr.Fade(), tr.Phase()
				_, swapped := tr.Step(dt)
				if swapped {
					swaps++
					if tr.Fade() != 1 {
						return false
					}
				}
				switch prevPhase {
				case PhaseFadingOut:
					if tr.Fade() < prevFade {
						return false
					}
				case PhaseFadingIn:
					if tr.Fade() > prevFade {
						return false
					}
				case PhaseIdle:
					if swapped {
						return false
					}
				}
			}

			if swaps > 1 {
				return false
			}
			// Returning to idle implies the scene was committed exactly once
			return tr.Active() || swaps == 1
		},
		deltas,
	))

	properties.Property("begin is rejected for the whole flight", prop.ForAll(
		func(dts []float64) bool {
			tr := NewTransition(DefaultFadeSpeed)
			tr.Begin(SceneDream)
			for _, dt := range dts {
				tr.Step(dt)
				if !tr.Active() {
					return true
				}
				dir := tr.Dir()
				if tr.Begin(SceneMenu) {
					return false
				}
				if next, _ := tr.Next(); next != SceneDream || tr.Dir() != dir {
					return false
				}
			}
			return true
		},
		deltas,
	))

	properties.TestingRun(t)
}
