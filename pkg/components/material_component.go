package components

import "image/color"

// MaterialComponent is a Phong material.
type MaterialComponent struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float64
	Shininess         float64

	// Opacity is 0 (invisible) to 1 (opaque). Tweened by the fly-away effect.
	Opacity float64
}
