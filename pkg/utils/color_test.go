package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff6b6b", color.RGBA{0xff, 0x6b, 0x6b, 0xff}},
		{"0xff8eb3", color.RGBA{0xff, 0x8e, 0xb3, 0xff}},
		{"#f00", color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{" #FFC0CB ", color.RGBA{0xff, 0xc0, 0xcb, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "ff6b6b6b"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) expected error", bad)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{10, 20, 30, 255}, 0.5)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 128 {
		t.Errorf("WithAlpha = %v", c)
	}
	if WithAlpha(color.RGBA{}, 2).A != 255 {
		t.Error("alpha must clamp to 255")
	}
}
