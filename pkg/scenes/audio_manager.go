package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	chime "github.com/decker502/proposal/internal/audio"
)

// AudioManager plays the synthesized celebration chime through ebiten.
//
// Audio failures are logged and otherwise ignored.
type AudioManager struct {
	context *audio.Context
	player  *audio.Player
	volume  float64
	muted   bool
}

// NewAudioManager creates an audio manager on ctx. A nil ctx gives a
// silent manager.
func NewAudioManager(ctx *audio.Context, muted bool) *AudioManager {
	return &AudioManager{
		context: ctx,
		volume:  0.8,
		muted:   muted,
	}
}

// PlayChime plays the chime from the start.
func (am *AudioManager) PlayChime() {
	if am.muted || am.context == nil {
		return
	}

	player := am.getChimePlayer()
	if player == nil {
		return
	}
	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind chime: %v", err)
	}
	player.Play()
}

// SetVolume sets the chime volume, 0 - 1.
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = volume
	if am.player != nil {
		am.player.SetVolume(volume)
	}
}

func (am *AudioManager) getChimePlayer() *audio.Player {
	if am.player != nil {
		return am.player
	}

	stream, err := chime.NewChimeStream(am.context.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to synthesize chime: %v", err)
		return nil
	}
	player, err := am.context.NewPlayer(stream)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create chime player: %v", err)
		return nil
	}
	am.player = player
	return player
}
