// Package utils holds small renderer-independent helpers shared by systems
// and front-ends: easing, colors, vectors, lighting, the heart outline and
// text layout.
package utils

import "math"

// Easing functions map progress t in [0, 1] to eased progress in [0, 1].
//
// Names accepted by EaseByName follow the tween vocabulary used by the scene
// description ("power1.out" and friends). See https://easings.net/.

// EasingFunc maps linear progress to eased progress.
type EasingFunc func(t float64) float64

// EaseLinear is the identity curve.
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad decelerates: f(t) = 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad accelerates: f(t) = t².
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOutCubic decelerates harder than EaseOutQuad: f(t) = 1 - (1-t)³.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic is f(t) = t³.
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic is the cubic in-out curve.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo is f(t) = 1 - 2^(-10t), pinned to 1 at t = 1.
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

var easingsByName = map[string]EasingFunc{
	"none":         EaseLinear,
	"linear":       EaseLinear,
	"power1.in":    EaseInQuad,
	"power1.out":   EaseOutQuad,
	"power1.inOut": EaseInOutQuad,
	"power2.in":    EaseInCubic,
	"power2.out":   EaseOutCubic,
	"power2.inOut": EaseInOutCubic,
	"expo.out":     EaseOutExpo,
}

// EaseByName looks up an easing curve by its tween name.
func EaseByName(name string) (EasingFunc, bool) {
	fn, ok := easingsByName[name]
	return fn, ok
}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
