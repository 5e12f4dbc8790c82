// Command confetti-viewer fires the scene's confetti bursts one at a time,
// for tuning burst options and confetti physics.
//
// Usage:
//
//	go run ./cmd/confetti-viewer [flags]
//
// Flags:
//
//	-config <path>  Scene description file (default: built in)
//	-auto-play      Fire the next burst every 3 seconds
//	-verbose        Enable verbose logging
//
// Controls:
//
//	Mouse Click       - Fire the selected burst at the cursor
//	Space             - Fire the selected burst at its configured origin
//	Left/Right Arrow  - Select previous/next burst
//	1-9               - Select burst by number
//	A                 - Fire the whole celebration timeline
//	P                 - Toggle pause
//	R                 - Clear all confetti
//	[ / ]             - Rotate the launch angle by 15°
//	\                 - Reset the angle offset
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/game"
	"github.com/decker502/proposal/pkg/render"
	"github.com/decker502/proposal/pkg/systems"
)

var (
	configFlag   = flag.String("config", "", "Scene description file")
	autoPlayFlag = flag.Bool("auto-play", false, "Fire the next burst every 3 seconds")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// ConfettiViewer implements ebiten.Game for the viewer.
type ConfettiViewer struct {
	cfg *config.SceneConfig

	entityManager  *ecs.EntityManager
	confettiSystem *systems.ConfettiSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *render.RenderSystem
	timeline       *game.Timeline

	picker *burstPicker

	width, height int
	paused        bool
	autoPlay      bool
	lastFire      time.Time
	statusMessage string
}

// NewConfettiViewer builds the viewer for a scene description.
func NewConfettiViewer(cfg *config.SceneConfig) (*ConfettiViewer, error) {
	em := ecs.NewEntityManager()
	rs, err := render.NewRenderSystem(em, cfg)
	if err != nil {
		return nil, err
	}
	w, h := cfg.Window.Width, cfg.Window.Height
	v := &ConfettiViewer{
		cfg:            cfg,
		entityManager:  em,
		confettiSystem: systems.NewConfettiSystem(em, cfg.Confetti, rand.New(rand.NewSource(time.Now().UnixNano())), w, h),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		renderSystem:   rs,
		timeline:       game.NewTimeline(),
		picker:         newBurstPicker(cfg.Celebration.Bursts),
		width:          w,
		height:         h,
		autoPlay:       *autoPlayFlag,
		lastFire:       time.Now(),
	}
	v.statusMessage = v.picker.describe()
	return v, nil
}

// Update handles input and steps the confetti.
func (v *ConfettiViewer) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
		if v.paused {
			v.statusMessage = "PAUSED - Press P to resume"
		} else {
			v.statusMessage = "Resumed"
		}
	}

	for i := 1; i <= 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.Key0) + i)) {
			if v.picker.jump(i - 1) {
				v.statusMessage = v.picker.describe()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.picker.previous()
		v.statusMessage = v.picker.describe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.picker.next()
		v.statusMessage = v.picker.describe()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		v.picker.rotate(-angleStep)
		v.statusMessage = v.picker.describe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		v.picker.rotate(angleStep)
		v.statusMessage = v.picker.describe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackslash) {
		v.picker.resetAngle()
		v.statusMessage = v.picker.describe()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.clearConfetti()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		n := game.Celebrate(v.confettiSystem, v.timeline, v.cfg.Celebration.Bursts, nil)
		v.statusMessage = fmt.Sprintf("Celebration: %d bursts scheduled", n)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.fire(nil)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.fire(&[2]float64{float64(x), float64(y)})
	}

	if v.autoPlay && time.Since(v.lastFire) > 3*time.Second {
		v.fire(nil)
		v.picker.next()
	}

	if v.paused {
		return nil
	}
	v.timeline.Update(dt)
	v.lifetimeSystem.Update(dt)
	v.confettiSystem.Update(dt)
	v.entityManager.RemoveMarkedEntities()
	return nil
}

func (v *ConfettiViewer) fire(at *[2]float64) {
	opts, ok := v.picker.options(at, v.width, v.height)
	if !ok {
		return
	}
	v.confettiSystem.Fire(opts)
	v.lastFire = time.Now()
	v.statusMessage = v.picker.describe()
}

func (v *ConfettiViewer) clearConfetti() {
	ids := ecs.GetEntitiesWith1[*components.ConfettiComponent](v.entityManager)
	for _, id := range ids {
		v.entityManager.DestroyEntity(id)
	}
	v.entityManager.RemoveMarkedEntities()
	v.statusMessage = fmt.Sprintf("Cleared %d particles", len(ids))
	log.Printf("Cleared %d particles", len(ids))
}

// Draw renders the confetti and the overlay.
func (v *ConfettiViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 25, 38, 255})
	v.renderSystem.DrawConfetti(screen)

	ebitenutil.DebugPrintAt(screen, "Confetti Viewer", 10, 10)
	ebitenutil.DebugPrintAt(screen, v.statusMessage, 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Active Particles: %d  Bursts Fired: %d", v.confettiSystem.ActiveCount(), v.confettiSystem.Bursts()), 10, 50)

	controls := []string{
		"Select:  <-/-> = Prev/Next  1-9 = Burst number",
		"Actions: Click/Space = Fire  A = Celebration  R = Clear  P = Pause  Q = Quit",
		"Angle:   [ = -15°  ] = +15°  \\ = Reset",
	}
	y := v.height - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}

	if v.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Press P to resume)", v.width-220, 10)
	} else if v.autoPlay {
		ebitenutil.DebugPrintAt(screen, "AUTO-PLAY MODE", v.width-140, 10)
	}
}

// Layout follows the window size.
func (v *ConfettiViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.confettiSystem.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSceneConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = config.LoadSceneConfig(*configFlag); err != nil {
			log.SetOutput(flag.CommandLine.Output())
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	viewer, err := NewConfettiViewer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize viewer:", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Confetti Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
