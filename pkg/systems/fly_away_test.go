package systems

import (
	"errors"
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
)

func TestFlyAwayStartsTwoTweensPerHeart(t *testing.T) {
	em, ids := newHeartWorld(t, 6)
	ts := NewTweenSystem(em)
	cfg := config.DefaultSceneConfig().FlyAway

	startY := make(map[ecs.EntityID]float64)
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		startY[id] = tr.Y
	}

	n, err := FlyAway(em, ts, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n != 50 || ts.ActiveCount() != 50 {
		t.Fatalf("tweens = %d (active %d), want 50", n, ts.ActiveCount())
	}

	for i := 0; i < 200; i++ {
		ts.Update(1.0 / 60)
		em.RemoveMarkedEntities()
	}
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		mat, _ := ecs.GetComponent[*components.MaterialComponent](em, id)
		if tr.Y != startY[id]-30 {
			t.Errorf("heart %d y = %v, want %v", id, tr.Y, startY[id]-30)
		}
		if mat.Opacity != 0 {
			t.Errorf("heart %d opacity = %v, want 0", id, mat.Opacity)
		}
	}
}

type failingAnimator struct{ calls int }

func (f *failingAnimator) Animate(ecs.EntityID, string, float64, float64, string) (ecs.EntityID, error) {
	f.calls++
	if f.calls == 3 {
		return 0, errors.New("boom")
	}
	return 0, nil
}

func TestFlyAwayStopsOnError(t *testing.T) {
	em, _ := newHeartWorld(t, 6)
	n, err := FlyAway(em, &failingAnimator{}, config.DefaultSceneConfig().FlyAway)
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 2 {
		t.Errorf("started = %d, want 2", n)
	}
}
