package game

import "github.com/decker502/proposal/pkg/config"

// UILayout places the wizard UI on a surface.
type UILayout struct {
	PanelX, PanelY   float64
	ButtonX, ButtonY float64
	BarX, BarY       float64
}

// LayoutFor centers the panel card on a width x height surface, puts the
// button at the bottom of the card and the progress bar above it.
func LayoutFor(width, height int) UILayout {
	w, h := float64(width), float64(height)
	px := (w - config.PanelWidth) / 2
	py := (h - config.PanelHeight) / 2
	return UILayout{
		PanelX:  px,
		PanelY:  py,
		ButtonX: w/2 - config.ButtonWidth/2,
		ButtonY: py + config.PanelHeight - config.PanelPadding - config.ButtonHeight,
		BarX:    (w - config.ProgressBarWidth) / 2,
		BarY:    py - config.ProgressBarGap - config.ProgressBarHeight,
	}
}
