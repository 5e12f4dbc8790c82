package game

import (
	"log"

	"github.com/decker502/proposal/pkg/config"
)

// BurstLauncher fires one confetti burst. Fire-and-forget.
type BurstLauncher interface {
	Fire(opts config.BurstOptions)
}

// ChimePlayer plays the celebration chime. Failures are the player's to
// log; the celebration does not wait for it.
type ChimePlayer interface {
	PlayChime()
}

// Celebrate schedules every burst on the timeline at its delay. Bursts with
// a zero delay fire on the timeline's next update. If chime is non-nil it
// plays together with the first burst.
//
// Returns:
//   - the number of bursts scheduled
func Celebrate(launcher BurstLauncher, timeline *Timeline, bursts []config.ScheduledBurst, chime ChimePlayer) int {
	for i, b := range bursts {
		opts := b.BurstOptions
		first := i == 0
		timeline.After(float64(b.DelayMs)/1000, func() {
			launcher.Fire(opts)
			if first && chime != nil {
				chime.PlayChime()
			}
		})
	}
	log.Printf("[Celebration] scheduled %d bursts", len(bursts))
	return len(bursts)
}
