package components

// FloatMotionComponent is the motion descriptor of a floating heart.
//
// Every tick the float system sets
//
//	position.axis = Origin.axis + sin(time * DriftSpeed.axis * 10) * FloatDistance
//
// and advances the rotation by RotationSpeedX/Y.
type FloatMotionComponent struct {
	// Index is the heart's position in the field (0-based creation order).
	Index int

	// Drift speeds per axis; they set the oscillation frequency.
	DriftSpeedX float64
	DriftSpeedY float64
	DriftSpeedZ float64

	// Rotation speeds in radians per tick.
	RotationSpeedX float64
	RotationSpeedY float64

	// Origin is the point the heart oscillates around. Initially the spawn
	// position; OriginY is rebased when a fly-away tween releases the y
	// channel.
	OriginX float64
	OriginY float64
	OriginZ float64

	// FloatDistance is the oscillation amplitude in world units.
	FloatDistance float64
}
