package components

// ProgressBarComponent is the wizard's progress bar. Its entity carries a
// PositionComponent for the top-left corner.
type ProgressBarComponent struct {
	Width  float64
	Height float64

	// Target is the wizard's progress (0.0 - 1.0), written on every step.
	Target float64
	// Displayed eases toward Target for rendering.
	Displayed float64
}
