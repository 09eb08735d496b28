// Package scene defines the Scene interface for game screens.
//
// Each screen (loading splash, menu/room/dream controller) implements
// the Scene interface to handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a screen driven by the game loop.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the clamped delta time in seconds since the previous frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
