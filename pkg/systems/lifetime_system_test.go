package systems

import (
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(5.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
	if p := Progress(lifetime); p != 0.5 {
		t.Errorf("Expected progress 0.5, got %f", p)
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}
	if p := Progress(lifetime); p != 1 {
		t.Errorf("Expected progress clamped to 1, got %f", p)
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Expired entity should be removed")
	}
}
