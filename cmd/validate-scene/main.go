// Command validate-scene checks a scene description file and prints a
// summary of what it configures.
//
// Usage:
//
//	go run ./cmd/validate-scene [path]
//
// The path defaults to data/scene.yaml. The exit status is 1 when the file
// cannot be read or fails validation.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/decker502/proposal/pkg/config"
)

const defaultPath = "data/scene.yaml"

func main() {
	path := defaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("FAIL read %s: %v\n", path, err)
		os.Exit(1)
	}

	scene, err := config.ParseSceneConfig(data)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("OK   %s\n", path)
	summarize(os.Stdout, scene)
}

// summarize prints the counts and the celebration timeline of a validated
// scene.
func summarize(w io.Writer, scene *config.SceneConfig) {
	fmt.Fprintf(w, "     window      %dx%d %q\n", scene.Window.Width, scene.Window.Height, scene.Window.Title)
	fmt.Fprintf(w, "     hearts      %d (%d colors)\n", scene.Hearts.Count, len(scene.Hearts.Palette))
	fmt.Fprintf(w, "     panels      %d\n", len(scene.Wizard.Panels))
	for i, p := range scene.Wizard.Panels {
		fmt.Fprintf(w, "       %d %-14s %-10s -> %s\n", i+1, p.ID, p.Control.ID, p.Control.Action)
	}

	bursts := append([]config.ScheduledBurst(nil), scene.Celebration.Bursts...)
	sort.SliceStable(bursts, func(i, j int) bool { return bursts[i].DelayMs < bursts[j].DelayMs })
	total := 0
	fmt.Fprintf(w, "     bursts      %d\n", len(bursts))
	for _, b := range bursts {
		ox, oy := b.OriginXY()
		fmt.Fprintf(w, "       %4d ms  %3d particles  angle %3.0f  spread %3.0f  origin (%.2f, %.2f)\n",
			b.DelayMs, b.ParticleCount, b.AngleOrDefault(), b.Spread, ox, oy)
		total += b.ParticleCount
	}
	fmt.Fprintf(w, "     confetti    %d particles in total\n", total)
	fmt.Fprintf(w, "     fly-away    %d tweens over %.1fs\n", 2*scene.Hearts.Count, scene.FlyAway.Duration)
}
