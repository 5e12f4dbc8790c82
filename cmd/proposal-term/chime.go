package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/proposal/internal/audio"
)

const chimeRate = beep.SampleRate(44100)

// speakerChime plays the celebration chime on the default audio device.
type speakerChime struct {
	samples []float64
	volume  float64 // linear gain, 0-1
}

// newSpeakerChime opens the speaker and renders the chime once.
func newSpeakerChime(volume float64) (*speakerChime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &speakerChime{
		samples: audio.Samples(audio.DefaultChime, int(chimeRate), audio.ChimeDuration),
		volume:  volume,
	}, nil
}

// PlayChime implements game.ChimePlayer.
func (c *speakerChime) PlayChime() {
	speaker.Play(withVolume(chimeStreamer(c.samples), c.volume))
}

// Close releases the audio device.
func (c *speakerChime) Close() {
	speaker.Clear()
	speaker.Close()
}

// chimeStreamer plays mono samples on both channels, once.
func chimeStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(buf, samples[pos:])
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
