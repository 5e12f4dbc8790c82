package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb", "#rgb" or "0xrrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHexColor is ParseHexColor for literals known to be valid.
func MustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c as a non-premultiplied color with alpha a (0-1).
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(Clamp01(a)*255 + 0.5)}
}
