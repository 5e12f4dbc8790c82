package main

import (
	"image/color"
	"testing"

	"github.com/decker502/proposal/pkg/utils"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestCanvasBlend(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"opaque", 1, 255},
		{"half", 0.5, 128},
		{"transparent", 0, 0},
		{"clamped", 2, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(2, 2, black)
			c.blend(1, 1, red, tt.alpha)
			if got := c.at(1, 1).R; got != tt.want {
				t.Errorf("R = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanvasBlendOutOfBounds(t *testing.T) {
	c := newCanvas(2, 2, black)
	c.blend(-1, 0, red, 1)
	c.blend(2, 0, red, 1)
	c.blend(0, 5, red, 1)
	for i, p := range c.pix {
		if p != black {
			t.Errorf("pixel %d changed to %v", i, p)
		}
	}
	if got := c.at(9, 9); got != (color.RGBA{}) {
		t.Errorf("at outside = %v, want zero", got)
	}
}

func TestFillHeart(t *testing.T) {
	c := newCanvas(40, 40, black)
	n := c.fillHeart(utils.Transform2{CX: 20, CY: 20, Size: 20, ScaleX: 1, ScaleY: 1}, red, 1)

	if n < 100 {
		t.Fatalf("filled %d pixels, want a solid heart", n)
	}
	if c.at(20, 20) != red {
		t.Error("the center of the heart should be painted")
	}
	if c.at(0, 0) != black || c.at(39, 39) != black {
		t.Error("the corners should stay background")
	}
}

func TestFillHeartTinyMarksCenter(t *testing.T) {
	c := newCanvas(10, 10, black)
	n := c.fillHeart(utils.Transform2{CX: 4.2, CY: 6.7, Size: 0.1, ScaleX: 1, ScaleY: 1}, red, 1)
	if n != 1 || c.at(4, 6) != red {
		t.Errorf("tiny heart filled %d pixels, center = %v", n, c.at(4, 6))
	}
}

func TestFillHeartOffCanvas(t *testing.T) {
	c := newCanvas(10, 10, black)
	if n := c.fillHeart(utils.Transform2{CX: -50, CY: -50, Size: 5, ScaleX: 1, ScaleY: 1}, red, 1); n != 0 {
		t.Errorf("off-canvas heart filled %d pixels", n)
	}
}
