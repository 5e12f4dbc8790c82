package config

// UI layout in layout pixels. The panel card is centered horizontally and
// anchored to the vertical center of the window.
const (
	// PanelWidth is the width of the wizard card.
	PanelWidth = 520.0
	// PanelHeight is the height of the wizard card.
	PanelHeight = 280.0
	// PanelPadding is the inner margin of the card.
	PanelPadding = 28.0

	// ButtonWidth and ButtonHeight size the panel control.
	ButtonWidth  = 160.0
	ButtonHeight = 48.0

	// ProgressBarWidth is the track width, centered above the card.
	ProgressBarWidth = 520.0
	// ProgressBarHeight is the track thickness.
	ProgressBarHeight = 8.0
	// ProgressBarGap is the space between the track and the card.
	ProgressBarGap = 18.0

	// TitleFontSize and BodyFontSize are in points at scale 1.
	TitleFontSize  = 30.0
	BodyFontSize   = 18.0
	ButtonFontSize = 20.0
)
