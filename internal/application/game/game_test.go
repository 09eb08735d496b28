package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/dreamroom/internal/application/scene"
	"github.com/younwookim/dreamroom/internal/application/system"
	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

type fixedTicker float64

func (f fixedTicker) Tick() float64 { return float64(f) }

type recordedFrame struct {
	dt      float64
	w, h    int
	click   ui.Point
	clicked bool
}

type mockRecorder struct {
	frames []recordedFrame
}

func (m *mockRecorder) RecordFrame(dt float64, w, h int, click ui.Point, clicked bool) {
	m.frames = append(m.frames, recordedFrame{dt, w, h, click, clicked})
}

// scriptedInput delivers one click per entry; nil entries are frames without a click
type scriptedInput struct {
	script  []*ui.Point
	pending *ui.Point
}

func (s *scriptedInput) Capture() bool {
	if len(s.script) == 0 {
		return false
	}
	next := s.script[0]
	s.script = s.script[1:]
	if next == nil {
		return false
	}
	s.pending = next
	return true
}

func (s *scriptedInput) PeekClick() (ui.Point, bool) {
	if s.pending == nil {
		return ui.Point{}, false
	}
	return *s.pending, true
}

func fixedViewport() *system.Viewport {
	return system.NewViewport(320, 240, false)
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, fixedViewport())

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, fixedViewport())

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 1.0/60.0, mockInitial.lastDT, 1e-12)
}

func TestGame_Update_UsesClock(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, fixedViewport())
	g.SetClock(fixedTicker(0.05))

	require.NoError(t, g.Update())
	assert.Equal(t, 0.05, mockInitial.lastDT)
}

func TestGame_SetDT(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, fixedViewport())
	g.SetDT(0.02)

	require.NoError(t, g.Update())
	assert.Equal(t, 0.02, mockInitial.lastDT)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, fixedViewport())

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	tests := []struct {
		name      string
		resizable bool
		wantW     int
		wantH     int
	}{
		{"fixed", false, 320, 240},
		{"resizable", true, 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&mockScene{}, system.NewViewport(320, 240, tt.resizable))

			w, h := g.Layout(640, 480)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestGame_InteractionHookFiresOnClick(t *testing.T) {
	g := New(&mockScene{}, fixedViewport())
	g.SetInput(&scriptedInput{script: []*ui.Point{nil, {X: 10, Y: 20}, nil, {X: 1, Y: 2}}})

	calls := 0
	g.OnInteract(func() { calls++ })

	for i := 0; i < 4; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 2, calls)
}

func TestGame_RecorderSeesEveryFrame(t *testing.T) {
	rec := &mockRecorder{}
	g := New(&mockScene{}, fixedViewport())
	g.SetClock(fixedTicker(0.016))
	g.SetInput(&scriptedInput{script: []*ui.Point{nil, {X: 10, Y: 20}}})
	g.SetRecorder(rec, nil)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	require.Len(t, rec.frames, 2)
	assert.Equal(t, recordedFrame{dt: 0.016, w: 320, h: 240}, rec.frames[0])
	assert.Equal(t, recordedFrame{dt: 0.016, w: 320, h: 240, click: ui.Point{X: 10, Y: 20}, clicked: true}, rec.frames[1])
}

func TestGame_RecorderWithoutInput(t *testing.T) {
	rec := &mockRecorder{}
	g := New(&mockScene{}, fixedViewport())
	g.SetRecorder(rec, nil)

	require.NoError(t, g.Update())

	require.Len(t, rec.frames, 1)
	assert.False(t, rec.frames[0].clicked)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, fixedViewport())
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, fixedViewport())

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, fixedViewport())

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}
