package ecs

import (
	"reflect"
	"testing"
)

type testTransform struct {
	X, Y, Z float64
}

type testMotion struct {
	Drift float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransform{}))
	if !found {
		t.Fatal("Component should be found")
	}
	tr := comp.(*testTransform)
	if tr.X != 1 || tr.Y != 2 || tr.Z != 3 {
		t.Errorf("Component data mismatch: got %+v", tr)
	}
}

func TestAddComponentToUnknownEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testTransform{})
	if em.HasComponent(EntityID(42), reflect.TypeOf(&testTransform{})) {
		t.Error("component must not be attached to an entity that was never created")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be gone after RemoveMarkedEntities")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()
	var both []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTransform{})
		if i%2 == 0 {
			em.AddComponent(id, &testMotion{})
			both = append(both, id)
		}
	}

	got := GetEntitiesWith2[*testTransform, *testMotion](em)
	if len(got) != len(both) {
		t.Fatalf("got %d entities, want %d", len(got), len(both))
	}
	for i := range got {
		if got[i] != both[i] {
			t.Fatalf("entity %d = %d, want %d (results must be in creation order)", i, got[i], both[i])
		}
	}

	if n := len(GetEntitiesWith1[*testTransform](em)); n != 50 {
		t.Errorf("GetEntitiesWith1 returned %d, want 50", n)
	}
}

func TestTypedHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testMotion{Drift: 0.5})

	m, ok := GetComponent[*testMotion](em, id)
	if !ok || m.Drift != 0.5 {
		t.Fatalf("GetComponent = (%v, %v)", m, ok)
	}
	if _, ok := GetComponent[*testTransform](em, id); ok {
		t.Error("missing component reported as present")
	}

	RemoveComponent[*testMotion](em, id)
	if HasComponent[*testMotion](em, id) {
		t.Error("component still present after RemoveComponent")
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()
	for _, id := range []EntityID{id1, id2, id3} {
		em.AddComponent(id, &testTransform{})
	}

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testTransform](em)
	if len(got) != 1 || got[0] != id2 {
		t.Errorf("remaining entities = %v, want [%d]", got, id2)
	}
}
