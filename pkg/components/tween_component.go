package components

import (
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/utils"
)

// Tweenable properties.
const (
	// TweenPositionY drives TransformComponent.Y.
	TweenPositionY = "position.y"
	// TweenOpacity drives MaterialComponent.Opacity.
	TweenOpacity = "opacity"
)

// TweenComponent animates one float channel of another entity.
//
// A tween is its own entity; the tween system destroys it when finished.
type TweenComponent struct {
	// Target is the animated entity.
	Target ecs.EntityID
	// Property is one of the Tween* constants.
	Property string

	// From is captured on the first update; To is the final value.
	From float64
	To   float64

	// Duration and Elapsed are in seconds.
	Duration float64
	Elapsed  float64

	// Ease maps linear progress to eased progress.
	Ease utils.EasingFunc

	// Started is set once From has been captured.
	Started bool
	// Done is set when Elapsed reaches Duration.
	Done bool

	// OnComplete runs once, after the final value is written.
	OnComplete func()
}
