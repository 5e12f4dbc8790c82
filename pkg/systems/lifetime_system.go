package systems

import (
	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

// LifetimeSystem ages entities and destroys them when they expire.
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem creates a lifetime system.
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update advances every LifetimeComponent by deltaTime seconds and marks
// expired entities for deletion.
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Progress returns how far through its life an entity is, in [0, 1].
func Progress(l *components.LifetimeComponent) float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}
