package game

import (
	"testing"

	"github.com/decker502/proposal/pkg/config"
)

type recordingLauncher struct {
	timeline *Timeline
	fired    []float64 // timeline time of each burst
	opts     []config.BurstOptions
}

func (r *recordingLauncher) Fire(opts config.BurstOptions) {
	r.fired = append(r.fired, r.timeline.Now())
	r.opts = append(r.opts, opts)
}

type countingChime struct {
	plays   int
	atBurst int
	l       *recordingLauncher
}

func (c *countingChime) PlayChime() {
	c.plays++
	c.atBurst = len(c.l.fired)
}

func TestCelebrateDefaultTimeline(t *testing.T) {
	tl := NewTimeline()
	l := &recordingLauncher{timeline: tl}
	chime := &countingChime{l: l}

	n := Celebrate(l, tl, config.DefaultSceneConfig().Celebration.Bursts, chime)
	if n != 4 {
		t.Fatalf("scheduled %d bursts, want 4", n)
	}

	const dt = 1.0 / 60
	for i := 0; i < 60; i++ {
		tl.Update(dt)
	}

	if len(l.fired) != 4 {
		t.Fatalf("fired %d bursts, want 4", len(l.fired))
	}

	// Bursts land on the first tick at or after their delay.
	wantDelays := []float64{0, 0.3, 0.6, 0.6}
	for i, at := range l.fired {
		if at < wantDelays[i]-1e-9 || at > wantDelays[i]+dt+1e-9 {
			t.Errorf("burst %d fired at %.3fs, want %.3fs", i, at, wantDelays[i])
		}
	}
	if l.fired[2] != l.fired[3] {
		t.Error("the two side bursts should fire together")
	}

	if l.opts[0].ParticleCount != 150 || l.opts[1].ParticleCount != 30 {
		t.Errorf("unexpected burst sizes %d, %d", l.opts[0].ParticleCount, l.opts[1].ParticleCount)
	}
	if a := l.opts[2].AngleOrDefault(); a != 60 {
		t.Errorf("left burst angle = %v, want 60", a)
	}
	if a := l.opts[3].AngleOrDefault(); a != 120 {
		t.Errorf("right burst angle = %v, want 120", a)
	}

	if chime.plays != 1 || chime.atBurst != 1 {
		t.Errorf("chime played %d times (after burst %d), want once with the first burst", chime.plays, chime.atBurst)
	}
}

func TestCelebrateWithoutChime(t *testing.T) {
	tl := NewTimeline()
	l := &recordingLauncher{timeline: tl}
	Celebrate(l, tl, config.DefaultSceneConfig().Celebration.Bursts, nil)
	tl.Update(1)
	if len(l.fired) != 4 {
		t.Errorf("fired %d bursts, want 4", len(l.fired))
	}
}
