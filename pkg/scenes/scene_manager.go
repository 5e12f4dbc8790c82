package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active. Only the active scene's
// Update and Draw are called.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a scene manager with no active scene; use
// SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the active scene. If no scene is active, this method does
// nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene. If no scene is active, this method does
// nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize forwards a surface size change to the active scene if it follows
// the window size.
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Stop tears down the active scene if it supports it.
func (sm *SceneManager) Stop() {
	if s, ok := sm.currentScene.(Stopper); ok {
		s.Stop()
	}
}

// Stopped reports whether the active scene has been torn down. A manager
// without a scene counts as stopped.
func (sm *SceneManager) Stopped() bool {
	if sm.currentScene == nil {
		return true
	}
	if s, ok := sm.currentScene.(Stopper); ok {
		return s.Stopped()
	}
	return false
}
