// Command proposal opens a window with a floating heart field and a
// five-step proposal wizard that ends in a confetti celebration.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-verbose        Enable log output (env PROPOSAL_VERBOSE)
//	-seed <n>       Seed the heart field; 0 seeds from the clock (env PROPOSAL_SEED)
//	-config <path>  Load the scene from a YAML file (env PROPOSAL_CONFIG)
//	-fullscreen     Start in fullscreen (env PROPOSAL_FULLSCREEN)
//	-mute           Disable the chime (env PROPOSAL_MUTE)
//
// Controls:
//
//	Click / Enter / Space  - Activate the current step's button
//	F11                    - Toggle fullscreen
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/proposal/pkg/app"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/embedded"
)

func main() {
	opts, err := config.LoadRuntimeOptions()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	flag.BoolVar(&opts.Verbose, "verbose", opts.Verbose, "Enable verbose logging")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed (0 = from the clock)")
	flag.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Scene description file (default: embedded)")
	flag.BoolVar(&opts.Fullscreen, "fullscreen", opts.Fullscreen, "Start in fullscreen mode")
	flag.BoolVar(&opts.Mute, "mute", opts.Mute, "Disable the celebration chime")
	flag.Parse()

	embedded.Init(dataFS)

	scene, err := opts.LoadScene()
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: opts.Verbose,
		Seed:    opts.Seed,
		Mute:    opts.Mute,
		Scene:   scene,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(scene.Window.Width, scene.Window.Height)
	ebiten.SetWindowTitle(scene.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
