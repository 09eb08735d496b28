package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScene_String(t *testing.T) {
	tests := []struct {
		scene    Scene
		expected string
	}{
		{SceneMenu, "menu"},
		{SceneRoom, "room"},
		{SceneDream, "dream"},
		{Scene(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scene.String())
		})
	}
}

func TestSceneConstants(t *testing.T) {
	// Zero value must be the initial scene
	assert.Equal(t, Scene(0), SceneMenu)
	assert.Equal(t, Scene(1), SceneRoom)
	assert.Equal(t, Scene(2), SceneDream)
}

func TestScene_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Scene
		want     bool
	}{
		{SceneMenu, SceneRoom, true},
		{SceneMenu, SceneDream, false},
		{SceneMenu, SceneMenu, false},
		{SceneRoom, SceneMenu, true},
		{SceneRoom, SceneDream, true},
		{SceneRoom, SceneRoom, false},
		{SceneDream, SceneRoom, true},
		{SceneDream, SceneMenu, false},
		{Scene(99), SceneRoom, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTheme(t *testing.T) {
	assert.Equal(t, Theme(0), ThemeDay)
	assert.Equal(t, "day", ThemeDay.String())
	assert.Equal(t, "night", ThemeNight.String())
	assert.Equal(t, "unknown", Theme(7).String())

	assert.Equal(t, ThemeNight, ThemeDay.Toggle())
	assert.Equal(t, ThemeDay, ThemeNight.Toggle())
	assert.Equal(t, ThemeDay, ThemeDay.Toggle().Toggle())
}

func TestModal(t *testing.T) {
	tests := []struct {
		modal       Modal
		name        string
		showHelp    bool
		showCredits bool
	}{
		{ModalNone, "none", false, false},
		{ModalHelp, "help", true, false},
		{ModalCredits, "credits", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.modal.String())
			assert.Equal(t, tt.showHelp, tt.modal.ShowHelp())
			assert.Equal(t, tt.showCredits, tt.modal.ShowCredits())
		})
	}
	assert.Equal(t, "unknown", Modal(5).String())
}
