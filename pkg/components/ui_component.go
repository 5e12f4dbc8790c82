package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is over the element.
	UIHovered
	// UIClicked indicates the element is being pressed.
	UIClicked
	// UIDisabled indicates the element ignores input.
	UIDisabled
)

// ButtonComponent is a clickable rectangle. Its entity also carries a
// PositionComponent for the top-left corner.
type ButtonComponent struct {
	// ControlID names the control, e.g. "start-btn".
	ControlID string
	Label     string

	Width  float64
	Height float64

	State   UIState
	Enabled bool

	// Pulsing marks the "ready" affordance on the final control.
	Pulsing bool

	// OnClick runs when the pointer is released over the button.
	OnClick func()
}
