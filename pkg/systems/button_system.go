package systems

import (
	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

// ButtonSystem handles pointer hover and clicks on buttons. The caller polls
// the pointer (window or terminal) and feeds it to HandlePointer.
//
// Responsibilities:
//   - hover detection (UIHovered)
//   - press feedback (UIClicked)
//   - running OnClick when the pointer is released over an enabled button
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem creates a button system.
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// HandlePointer applies one tick of pointer state to every button.
//
// Returns:
//   - true if a button's OnClick ran
func (s *ButtonSystem) HandlePointer(x, y float64, pressed, released bool) bool {
	clicked := false
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !PointInRect(x, y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			button.State = components.UIHovered
			if button.OnClick != nil && !clicked {
				button.OnClick()
				clicked = true
			}
		default:
			button.State = components.UIHovered
		}
	}
	return clicked
}

// PointInRect reports whether (px, py) lies inside the rectangle.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
