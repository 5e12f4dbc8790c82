// Package audio synthesizes the celebration chime as raw PCM, ready for
// either the ebiten audio player or a beep streamer.
package audio

import (
	"fmt"
	"io"
	"math"
)

// Note is one partial of the chime.
type Note struct {
	Freq  float64 // Hz
	Start float64 // seconds from the chime start
	Decay float64 // seconds for the amplitude to fall to 1/e
	Gain  float64
}

// DefaultChime is a rising C major arpeggio.
var DefaultChime = []Note{
	{Freq: 1046.50, Start: 0.00, Decay: 0.35, Gain: 0.30},
	{Freq: 1318.51, Start: 0.08, Decay: 0.35, Gain: 0.26},
	{Freq: 1567.98, Start: 0.16, Decay: 0.45, Gain: 0.24},
	{Freq: 2093.00, Start: 0.24, Decay: 0.60, Gain: 0.18},
}

// ChimeDuration is the length of the synthesized chime in seconds.
const ChimeDuration = 1.4

// Samples renders notes to mono samples in [-1, 1].
func Samples(notes []Note, sampleRate int, duration float64) []float64 {
	n := int(math.Round(float64(sampleRate) * duration))
	out := make([]float64, n)
	for _, note := range notes {
		start := int(note.Start * float64(sampleRate))
		for i := start; i < n; i++ {
			t := float64(i-start) / float64(sampleRate)
			env := math.Exp(-t / note.Decay)
			// 5 ms attack avoids a click.
			if t < 0.005 {
				env *= t / 0.005
			}
			out[i] += note.Gain * env * math.Sin(2*math.Pi*note.Freq*t)
		}
	}
	for i, v := range out {
		out[i] = math.Max(-1, math.Min(1, v))
	}
	return out
}

// PCMStream is 16-bit little-endian stereo PCM in memory. It implements
// io.ReadSeeker for ebiten's audio player.
type PCMStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// NewChimeStream renders DefaultChime at sampleRate.
func NewChimeStream(sampleRate int) (*PCMStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	samples := Samples(DefaultChime, sampleRate, ChimeDuration)

	data := make([]byte, len(samples)*4)
	for i, v := range samples {
		pcm := int16(v * math.MaxInt16)
		// Left and right.
		data[i*4] = byte(pcm)
		data[i*4+1] = byte(pcm >> 8)
		data[i*4+2] = byte(pcm)
		data[i*4+3] = byte(pcm >> 8)
	}
	return &PCMStream{data: data, sampleRate: sampleRate}, nil
}

// Read reads PCM data into p.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the PCM length in bytes.
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate in Hz.
func (s *PCMStream) SampleRate() int {
	return s.sampleRate
}
