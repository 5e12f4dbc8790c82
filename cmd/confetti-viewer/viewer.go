package main

import (
	"fmt"

	"github.com/decker502/proposal/pkg/config"
)

// angleStep is the change per [ or ] press, in degrees.
const angleStep = 15.0

// burstPicker selects one of the scene's bursts and derives the options to
// fire it with.
type burstPicker struct {
	bursts      []config.ScheduledBurst
	current     int
	angleOffset float64
}

func newBurstPicker(bursts []config.ScheduledBurst) *burstPicker {
	return &burstPicker{bursts: bursts}
}

func (p *burstPicker) next() {
	if len(p.bursts) > 0 {
		p.current = (p.current + 1) % len(p.bursts)
	}
}

func (p *burstPicker) previous() {
	if len(p.bursts) > 0 {
		p.current = (p.current - 1 + len(p.bursts)) % len(p.bursts)
	}
}

// jump selects burst i (0-based); out-of-range indexes are ignored.
func (p *burstPicker) jump(i int) bool {
	if i < 0 || i >= len(p.bursts) {
		return false
	}
	p.current = i
	return true
}

func (p *burstPicker) rotate(deg float64) { p.angleOffset += deg }

func (p *burstPicker) resetAngle() { p.angleOffset = 0 }

// options returns the selected burst with the angle offset applied. A
// pointer position in pixels on a width x height surface overrides the
// configured origin.
func (p *burstPicker) options(at *[2]float64, width, height int) (config.BurstOptions, bool) {
	if len(p.bursts) == 0 {
		return config.BurstOptions{}, false
	}
	opts := p.bursts[p.current].BurstOptions

	angle := opts.AngleOrDefault() + p.angleOffset
	opts.Angle = &angle

	if at != nil && width > 0 && height > 0 {
		x := at[0] / float64(width)
		y := at[1] / float64(height)
		opts.Origin = config.Origin{X: &x, Y: &y}
	}
	return opts, true
}

func (p *burstPicker) describe() string {
	if len(p.bursts) == 0 {
		return "No bursts in the scene"
	}
	b := p.bursts[p.current]
	return fmt.Sprintf("Burst %d/%d: %d particles, spread %.0f°, angle %.0f° (+%.0f°), at %d ms",
		p.current+1, len(p.bursts), b.ParticleCount, b.Spread, b.AngleOrDefault(), p.angleOffset, b.DelayMs)
}
