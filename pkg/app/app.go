// Package app wraps the proposal scene in an ebiten.Game.
//
// main.go builds the App from the runtime options; embedded.Init must run
// first.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/input"
	"github.com/decker502/proposal/pkg/scenes"
	"github.com/decker502/proposal/pkg/utils"
)

// sampleRate is the audio context rate.
const sampleRate = 48000

// Config holds the application start options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// Seed seeds the heart field and confetti.
	Seed int64
	// Mute disables the chime.
	Mute bool
	// Scene is the validated scene description.
	Scene *config.SceneConfig
}

// App implements ebiten.Game around a single ProposalScene.
type App struct {
	sceneManager *scenes.SceneManager
	scene        *scenes.ProposalScene
	verbose      bool

	// layoutW, layoutH is the last outside size reported to Layout.
	layoutW, layoutH int
}

// NewApp builds the scene and the audio.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Scene == nil {
		return nil, fmt.Errorf("no scene description")
	}

	var audioManager *scenes.AudioManager
	if !cfg.Mute {
		audioManager = scenes.NewAudioManager(audio.NewContext(sampleRate), false)
		log.Printf("[App] AudioManager initialized")
	}

	opts := scenes.SceneOptions{
		Rand:  rand.New(rand.NewSource(cfg.Seed)),
		Input: EbitenInput{},
	}
	// A nil *AudioManager must not become a non-nil interface.
	if audioManager != nil {
		opts.Chime = audioManager
	}

	scene, err := scenes.NewProposalScene(cfg.Scene, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	sm := scenes.NewSceneManager()
	sm.SwitchTo(scene)
	log.Printf("[App] started with seed %d", cfg.Seed)

	return &App{
		sceneManager: sm,
		scene:        scene,
		verbose:      cfg.Verbose,
		layoutW:      cfg.Scene.Window.Width,
		layoutH:      cfg.Scene.Window.Height,
	}, nil
}

// EbitenInput polls the window's mouse, touch and keyboard.
type EbitenInput struct{}

// Pointer implements scenes.InputSource.
func (EbitenInput) Pointer() input.InputState { return input.GetInputState() }

// ActivatePressed implements scenes.InputSource.
func (EbitenInput) ActivatePressed() bool { return input.IsActivateKeyJustPressed() }

// Update runs one tick (60 per second). It returns ebiten.Termination once
// the scene has been stopped.
func (a *App) Update() error {
	if a.sceneManager.Stopped() {
		log.Printf("[App] scene stopped, exiting")
		return ebiten.Termination
	}

	// Mobile bindings are always fullscreen.
	if !utils.IsMobile() && input.IsFullscreenToggleJustPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders one frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout follows the window: the logical screen is the outside size, and
// any change is forwarded to the scene.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.layoutW || outsideHeight != a.layoutH {
		a.layoutW, a.layoutH = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// DrawFinalScreen draws the offscreen with linear filtering on a black
// letterbox.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Stop tears the scene down; the next Update ends the game loop.
func (a *App) Stop() {
	a.sceneManager.Stop()
}

// Scene returns the proposal scene.
func (a *App) Scene() *scenes.ProposalScene {
	return a.scene
}

// IsVerbose reports whether logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
