package main

import (
	"image/color"
	"math"

	"github.com/decker502/proposal/pkg/utils"
)

// heartPolygon is the heart outline sampled once, in shape space.
var heartPolygon = utils.HeartOutline(6)

// canvas is a small RGB raster. Each terminal cell shows two vertically
// stacked canvas pixels, so the pixels come out roughly square.
type canvas struct {
	w, h int
	pix  []color.RGBA
}

func newCanvas(w, h int, bg color.RGBA) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, pix: make([]color.RGBA, w*h)}
	for i := range c.pix {
		c.pix[i] = bg
	}
	return c
}

func (c *canvas) at(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	return c.pix[y*c.w+x]
}

// blend paints col over the pixel with the given opacity (0-1).
func (c *canvas) blend(x, y int, col color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	a := utils.Clamp01(alpha)
	if a == 0 {
		return
	}
	dst := &c.pix[y*c.w+x]
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	dst.R = mix(dst.R, col.R)
	dst.G = mix(dst.G, col.G)
	dst.B = mix(dst.B, col.B)
	dst.A = 255
}

// fillHeart rasterizes a heart by sampling pixel centers against the
// transformed outline. A heart smaller than a pixel still marks the pixel
// under its center.
func (c *canvas) fillHeart(t utils.Transform2, col color.RGBA, alpha float64) int {
	poly := make([]utils.Point2, len(heartPolygon))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range heartPolygon {
		x, y := t.Apply(p)
		poly[i] = utils.Point2{X: x, Y: y}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := max(int(math.Floor(minX)), 0)
	y0 := max(int(math.Floor(minY)), 0)
	x1 := min(int(math.Ceil(maxX)), c.w-1)
	y1 := min(int(math.Ceil(maxY)), c.h-1)

	filled := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if utils.PointInPolygon(utils.Point2{X: float64(x) + 0.5, Y: float64(y) + 0.5}, poly) {
				c.blend(x, y, col, alpha)
				filled++
			}
		}
	}
	if filled == 0 {
		cx, cy := int(math.Floor(t.CX)), int(math.Floor(t.CY))
		if cx >= 0 && cy >= 0 && cx < c.w && cy < c.h {
			c.blend(cx, cy, col, alpha)
			filled = 1
		}
	}
	return filled
}
