package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var interpolationKeywords = []string{"Linear", "EaseIn", "EaseOut", "FastInOutWeak"}

// ParseValue parses a value string.
//
// Returns:
//   - min, max: range bounds (equal for a fixed value, zero for keyframes)
//   - keyframes: parsed keyframes, nil unless the keyframe form was used
//   - interpolation: the interpolation keyword, if any
//   - err: the string matched no form
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, "", fmt.Errorf("empty value")
	}

	// Range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 2:
			min, err1 := strconv.ParseFloat(parts[0], 64)
			max, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid range %q", s)
			}
			return min, max, nil, "", nil
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid range %q", s)
			}
			return v, v, nil, "", nil
		}
		return 0, 0, nil, "", fmt.Errorf("invalid range %q", s)
	}

	for _, keyword := range interpolationKeywords {
		if strings.Contains(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframes format: "time,value time,value ..."
	if strings.Contains(s, ",") {
		for _, part := range strings.Fields(s) {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				return 0, 0, nil, "", fmt.Errorf("invalid keyframe %q", part)
			}
			t, err1 := strconv.ParseFloat(pair[0], 64)
			v, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 != nil || err2 != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid keyframe %q", part)
			}
			keyframes = append(keyframes, Keyframe{Time: t, Value: v})
		}
		for i := 1; i < len(keyframes); i++ {
			if keyframes[i].Time < keyframes[i-1].Time {
				return 0, 0, nil, "", fmt.Errorf("keyframes out of order in %q", s)
			}
		}
		return 0, 0, keyframes, interpolation, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, nil, "", fmt.Errorf("invalid value %q", s)
	}
	return value, value, nil, "", nil
}

// ParseRange parses a fixed value or a "[min max]" range.
func ParseRange(s string) (Range, error) {
	min, max, keyframes, _, err := ParseValue(s)
	if err != nil {
		return Range{}, err
	}
	if keyframes != nil {
		return Range{}, fmt.Errorf("expected a range, got keyframes %q", s)
	}
	if min > max {
		return Range{}, fmt.Errorf("range %q has min > max", s)
	}
	return Range{Min: min, Max: max}, nil
}

// ParseCurve parses a keyframe string.
func ParseCurve(s string) (Curve, error) {
	_, _, keyframes, interp, err := ParseValue(s)
	if err != nil {
		return Curve{}, err
	}
	if len(keyframes) == 0 {
		return Curve{}, fmt.Errorf("expected keyframes, got %q", s)
	}
	return Curve{Keyframes: keyframes, Interpolation: interp}, nil
}

// Sample draws a uniform value from the range using rng.
// It consumes exactly one value from rng even for a fixed range, so the
// draw sequence does not depend on configured widths.
func (r Range) Sample(rng *rand.Rand) float64 {
	u := rng.Float64()
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + u*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// String renders the range in the notation ParseRange accepts.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// UnmarshalYAML accepts either a number or a range string.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseRange(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the range notation.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML accepts a keyframe string.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCurve(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// String renders the curve in the notation ParseCurve accepts.
func (c Curve) String() string {
	parts := make([]string, 0, len(c.Keyframes)+1)
	for _, k := range c.Keyframes {
		parts = append(parts, strconv.FormatFloat(k.Time, 'g', -1, 64)+","+strconv.FormatFloat(k.Value, 'g', -1, 64))
	}
	if c.Interpolation != "" {
		parts = append(parts, c.Interpolation)
	}
	return strings.Join(parts, " ")
}

// MarshalYAML writes the keyframe notation.
func (c Curve) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Evaluate returns the curve's value at normalized time t.
func (c Curve) Evaluate(t float64) float64 {
	return EvaluateKeyframes(c.Keyframes, t, c.Interpolation)
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))
	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}
		duration := k1.Time - k0.Time
		if duration <= 0 {
			return k0.Value
		}
		ratio := (t - k0.Time) / duration

		switch interpolation {
		case "EaseIn":
			ratio = ratio * ratio
		case "EaseOut":
			ratio = 1 - (1-ratio)*(1-ratio)
		case "FastInOutWeak":
			ratio = ratio * ratio * (3 - 2*ratio)
		}
		return k0.Value + ratio*(k1.Value-k0.Value)
	}

	return keyframes[len(keyframes)-1].Value
}
