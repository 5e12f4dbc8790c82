package audio

import (
	"io"
	"math"
	"testing"
)

func TestSamplesAreBounded(t *testing.T) {
	samples := Samples(DefaultChime, 44100, ChimeDuration)
	if len(samples) != int(44100*ChimeDuration) {
		t.Fatalf("len = %d", len(samples))
	}
	peak := 0.0
	for _, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %v out of range", v)
		}
		peak = math.Max(peak, math.Abs(v))
	}
	if peak < 0.1 {
		t.Errorf("peak %v, the chime is nearly silent", peak)
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack ramp)", samples[0])
	}
	// The tail has decayed.
	if tail := math.Abs(samples[len(samples)-1]); tail > 0.05 {
		t.Errorf("last sample %v, want a decayed tail", tail)
	}
}

func TestChimeStreamReadSeek(t *testing.T) {
	s, err := NewChimeStream(48000)
	if err != nil {
		t.Fatal(err)
	}
	if s.Length() != int64(48000*ChimeDuration)*4 {
		t.Errorf("length = %d bytes", s.Length())
	}

	all, err := io.ReadAll(s)
	if err != nil {
		t.Fatal(err)
	}
	if int64(len(all)) != s.Length() {
		t.Errorf("read %d bytes, want %d", len(all), s.Length())
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 8)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("negative seek should fail")
	}
	if _, err := NewChimeStream(0); err == nil {
		t.Error("zero sample rate should fail")
	}
}
