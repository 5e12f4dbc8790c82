package utils

import (
	"image/color"
	"math"
)

// Light is a white-or-tinted light source. Direction is only used by
// directional lights and points from the surface toward the light.
type Light struct {
	Color     color.RGBA
	Intensity float64
	Direction Vec3
}

// Lighting is the scene's ambient + single directional light rig.
type Lighting struct {
	Ambient     Light
	Directional Light
}

// Surface describes a Phong material.
type Surface struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float64
	Shininess         float64
	// Specular is the strength of the highlight; 0.07 matches a dim grey
	// specular color.
	Specular float64
}

// Shade computes the lit color of a flat surface with the given normal,
// viewed from +z. The surface is two-sided: a normal facing away from the
// light is flipped so the back of a heart is lit like its front.
func (l Lighting) Shade(s Surface, normal Vec3) color.RGBA {
	n := normal.Normalize()
	view := Vec3{0, 0, 1}
	if n.Dot(view) < 0 {
		n = n.Scale(-1)
	}

	ld := l.Directional.Direction.Normalize()
	diffuse := math.Max(0, n.Dot(ld))

	half := ld.Add(view).Normalize()
	spec := 0.0
	if diffuse > 0 {
		spec = math.Pow(math.Max(0, n.Dot(half)), s.Shininess) * s.Specular
	}

	channel := func(base, amb, dir, emis uint8) uint8 {
		b := float64(base) / 255
		v := b*(float64(amb)/255)*l.Ambient.Intensity +
			b*(float64(dir)/255)*l.Directional.Intensity*diffuse +
			(float64(dir)/255)*l.Directional.Intensity*spec +
			(float64(emis)/255)*s.EmissiveIntensity
		return uint8(Clamp01(v)*255 + 0.5)
	}

	return color.RGBA{
		R: channel(s.Color.R, l.Ambient.Color.R, l.Directional.Color.R, s.Emissive.R),
		G: channel(s.Color.G, l.Ambient.Color.G, l.Directional.Color.G, s.Emissive.G),
		B: channel(s.Color.B, l.Ambient.Color.B, l.Directional.Color.B, s.Emissive.B),
		A: 0xff,
	}
}
