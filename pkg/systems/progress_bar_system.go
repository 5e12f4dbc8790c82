package systems

import (
	"math"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

// progressFollowRate is how fast the displayed fill closes the gap to the
// target, per second.
const progressFollowRate = 8.0

// ProgressBarSystem eases the displayed fill of progress bars toward their
// target.
type ProgressBarSystem struct {
	entityManager *ecs.EntityManager
}

// NewProgressBarSystem creates a progress bar system.
func NewProgressBarSystem(em *ecs.EntityManager) *ProgressBarSystem {
	return &ProgressBarSystem{entityManager: em}
}

// SetTarget sets every progress bar's target, 0.0 - 1.0.
func (s *ProgressBarSystem) SetTarget(progress float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](s.entityManager, id)
		bar.Target = progress
	}
}

// Update moves Displayed toward Target.
func (s *ProgressBarSystem) Update(deltaTime float64) {
	k := 1 - math.Exp(-progressFollowRate*deltaTime)
	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](s.entityManager, id)
		bar.Displayed += (bar.Target - bar.Displayed) * k
		if math.Abs(bar.Target-bar.Displayed) < 1e-4 {
			bar.Displayed = bar.Target
		}
	}
}
