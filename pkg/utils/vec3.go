package utils

import "math"

// Vec3 is a 3D vector in world space (right-handed, y up, camera looking
// down -z).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length; the zero vector is returned as is.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateX rotates v around the x axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v around the y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// FacingNormal returns the front normal (+z) of a flat object rotated by rx
// then ry (Euler XYZ order, z rotation zero).
func FacingNormal(rx, ry float64) Vec3 {
	return Vec3{0, 0, 1}.RotateX(rx).RotateY(ry)
}
