package components

import "image/color"

// ConfettiComponent is one piece of burst confetti. Position lives in the
// entity's PositionComponent; lifetime in its LifetimeComponent.
//
// Motion follows the classic confetti model, per 60 Hz tick:
//
//	x += cos(Angle2D) * Velocity + Drift
//	y += sin(Angle2D) * Velocity + Gravity
//	Velocity *= Decay
type ConfettiComponent struct {
	// Angle2D is the launch direction in radians, screen space (y down).
	Angle2D  float64
	Velocity float64
	Decay    float64
	Gravity  float64
	Drift    float64

	// Wobble gives the flutter: a small circular offset that advances by
	// WobbleSpeed per tick.
	Wobble      float64
	WobbleSpeed float64

	// TiltAngle spins the piece; its cosine squashes the drawn shape.
	TiltAngle float64
	TiltSin   float64
	TiltCos   float64

	// Size is the drawn size in layout pixels.
	Size float64

	Color color.RGBA
	Shape string

	// Alpha is updated from the fade curve each tick.
	Alpha float64
}
