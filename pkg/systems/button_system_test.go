package systems

import (
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

func newTestButton(em *ecs.EntityManager, enabled bool, onClick func()) *components.ButtonComponent {
	id := em.CreateEntity()
	btn := &components.ButtonComponent{
		ControlID: "next-btn-2",
		Label:     "Next",
		Width:     100,
		Height:    40,
		Enabled:   enabled,
		OnClick:   onClick,
	}
	em.AddComponent(id, btn)
	em.AddComponent(id, &components.PositionComponent{X: 50, Y: 50})
	return btn
}

func TestButtonSystemStates(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		x, y      float64
		pressed   bool
		released  bool
		wantState components.UIState
		wantClick int
	}{
		{"outside", true, 10, 10, false, false, components.UINormal, 0},
		{"hover", true, 60, 60, false, false, components.UIHovered, 0},
		{"pressed", true, 60, 60, true, false, components.UIClicked, 0},
		{"released inside clicks", true, 60, 60, false, true, components.UIHovered, 1},
		{"released outside", true, 10, 10, false, true, components.UINormal, 0},
		{"disabled ignores clicks", false, 60, 60, false, true, components.UIDisabled, 0},
		{"edge counts as inside", true, 150, 90, false, true, components.UIHovered, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			clicks := 0
			btn := newTestButton(em, tt.enabled, func() { clicks++ })
			bs := NewButtonSystem(em)

			got := bs.HandlePointer(tt.x, tt.y, tt.pressed, tt.released)

			if btn.State != tt.wantState {
				t.Errorf("state = %v, want %v", btn.State, tt.wantState)
			}
			if clicks != tt.wantClick {
				t.Errorf("clicks = %d, want %d", clicks, tt.wantClick)
			}
			if got != (tt.wantClick > 0) {
				t.Errorf("HandlePointer returned %v", got)
			}
		})
	}
}
