// Package particle parses and samples the value notation used by the scene
// description for randomized particle parameters.
//
// A value is written in one of three forms:
//   - Fixed value: "0.9"
//   - Range: "[0.5 1.3]" (uniform random value between min and max)
//   - Keyframes: "0,1 0.7,1 1,0" (time,value pairs over normalized time)
//
// Keyframe strings may carry an interpolation keyword such as
// "Linear" or "EaseOut".
package particle

// Keyframe is one point of an animation curve over normalized time.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Range is a closed interval [Min, Max] sampled uniformly.
// A fixed value is a Range with Min == Max.
type Range struct {
	Min float64
	Max float64
}

// Curve is a keyframed value with its interpolation mode.
type Curve struct {
	Keyframes     []Keyframe
	Interpolation string
}
