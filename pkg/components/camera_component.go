package components

// CameraComponent is a perspective camera on the z axis looking at the
// origin.
type CameraComponent struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is viewport width / height.
	Aspect float64
	Near   float64
	Far    float64

	// Z is the camera's distance from the origin along +z.
	Z float64

	// ViewportWidth and ViewportHeight are the render surface size in
	// pixels.
	ViewportWidth  int
	ViewportHeight int
}
