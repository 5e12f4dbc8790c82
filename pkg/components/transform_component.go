// Package components holds the pure-data components of the scene. Components
// carry no behavior; systems in pkg/systems mutate them.
package components

// TransformComponent is the placement of a 3D object in world space.
//
// World space is right-handed with y up; the camera sits on +z looking at
// the origin.
type TransformComponent struct {
	X, Y, Z float64

	// Scale is a uniform scale factor.
	Scale float64

	// RotationX and RotationY are Euler angles in radians (XYZ order, z = 0).
	RotationX float64
	RotationY float64
}
