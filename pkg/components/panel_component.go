package components

// PanelComponent is one wizard step card. Only the active panel is drawn.
type PanelComponent struct {
	// Step is 1-based.
	Step  int
	ID    string
	Title string
	Body  string

	// Active is true for the panel of the current step.
	Active bool
}
