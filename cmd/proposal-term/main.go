// Command proposal-term plays the proposal in a terminal: the heart field
// in half-block cells, the wizard as a text panel and the celebration as
// colored confetti dots.
//
// Usage:
//
//	go run ./cmd/proposal-term [flags]
//
// Flags:
//
//	-verbose        Log to proposal-term.log (env PROPOSAL_VERBOSE)
//	-seed <n>       Seed the heart field; 0 seeds from the clock (env PROPOSAL_SEED)
//	-config <path>  Load the scene from a YAML file (env PROPOSAL_CONFIG)
//	-mute           Disable the chime (env PROPOSAL_MUTE)
//	-volume <v>     Chime volume, 0-1
//
// Controls:
//
//	Enter / Space / click  - Activate the current step's button
//	q / Esc / Ctrl-C       - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/game"
)

const logFile = "proposal-term.log"

func main() {
	opts, err := config.LoadRuntimeOptions()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	volume := flag.Float64("volume", 0.8, "Chime volume (0-1)")
	flag.BoolVar(&opts.Verbose, "verbose", opts.Verbose, "Write a log file")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed (0 = from the clock)")
	flag.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Scene description file (default: built in)")
	flag.BoolVar(&opts.Mute, "mute", opts.Mute, "Disable the celebration chime")
	flag.Parse()

	if err := run(opts, *volume); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts config.RuntimeOptions, volume float64) error {
	// The screen owns stdout, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if opts.Verbose {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	scene := config.DefaultSceneConfig()
	if opts.ConfigPath != "" {
		var err error
		if scene, err = config.LoadSceneConfig(opts.ConfigPath); err != nil {
			return err
		}
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	popts := game.ProposalOptions{Rand: rand.New(rand.NewSource(opts.Seed))}
	if !opts.Mute {
		chime, err := newSpeakerChime(volume)
		if err != nil {
			log.Printf("[Terminal] audio disabled: %v", err)
		} else {
			defer chime.Close()
			popts.Chime = chime
		}
	}

	proposal, err := game.NewProposal(scene, popts)
	if err != nil {
		return fmt.Errorf("create proposal: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Printf("[Terminal] started with seed %d", opts.Seed)
	err = NewTerminal(screen, proposal, scene).Run(ctx)
	proposal.Stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
