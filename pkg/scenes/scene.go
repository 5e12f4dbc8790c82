// Package scenes holds the ebiten scenes and the scene manager.
package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a distinct screen of the application.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by scenes that follow the window size.
type Resizer interface {
	Resize(width, height int)
}

// Stopper is implemented by scenes with an explicit teardown.
type Stopper interface {
	Stop()
	Stopped() bool
}
