package components

// PositionComponent is a 2D position in layout pixels (y down).
type PositionComponent struct {
	X, Y float64
}
