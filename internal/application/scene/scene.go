// Package scene defines the Scene interface for game screens and the
// descriptors used to load them.
//
// Each game screen (title, arena, pause, etc.) implements the Scene
// interface to handle its own update logic and rendering. Screens are
// registered in a Registry and loaded by ID through a Loader.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a loadable game screen.
//
// The game loop delegates Update and Draw calls to every loaded scene.
// Scene transitions are requested through a Descriptor, not returned
// from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the scaled delta time in seconds.
	// Returns an error to terminate the game.
	Update(dt float64) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes loaded.
	OnEnter()

	// OnExit is called when the scene is unloaded.
	OnExit()
}

// Factory builds a fresh instance of a scene.
// It may be called from a background goroutine for async loads.
type Factory func() (Scene, error)
