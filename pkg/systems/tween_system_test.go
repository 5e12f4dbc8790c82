package systems

import (
	"math"
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

func newTweenTarget(em *ecs.EntityManager, y, opacity float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Y: y, Scale: 1})
	em.AddComponent(id, &components.MaterialComponent{Opacity: opacity})
	return id
}

func TestTweenReachesTarget(t *testing.T) {
	tests := []struct {
		name     string
		property string
		to       float64
		ease     string
	}{
		{"position quad out", components.TweenPositionY, -20, "power1.out"},
		{"opacity linear", components.TweenOpacity, 0, "linear"},
		{"opacity in out", components.TweenOpacity, 0.25, "power1.inOut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ts := NewTweenSystem(em)
			target := newTweenTarget(em, 10, 0.9)

			completed := 0
			tid, err := ts.Animate(target, tt.property, tt.to, 3, tt.ease)
			if err != nil {
				t.Fatal(err)
			}
			tw, _ := ecs.GetComponent[*components.TweenComponent](em, tid)
			tw.OnComplete = func() { completed++ }

			if !ts.IsAnimating(target, tt.property) {
				t.Fatal("tween should own the property right after Animate")
			}

			for i := 0; i < 200; i++ {
				ts.Update(1.0 / 60)
				em.RemoveMarkedEntities()
			}

			tr, _ := ecs.GetComponent[*components.TransformComponent](em, target)
			mat, _ := ecs.GetComponent[*components.MaterialComponent](em, target)
			got := tr.Y
			if tt.property == components.TweenOpacity {
				got = mat.Opacity
			}
			if got != tt.to {
				t.Errorf("final value = %v, want %v", got, tt.to)
			}
			if ts.IsAnimating(target, tt.property) {
				t.Error("finished tween still owns the property")
			}
			if completed != 1 {
				t.Errorf("OnComplete ran %d times, want 1", completed)
			}
			if em.Exists(tid) {
				t.Error("finished tween entity should be destroyed")
			}
		})
	}
}

func TestTweenEasingShape(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTweenSystem(em)
	target := newTweenTarget(em, 0, 1)

	if _, err := ts.Animate(target, components.TweenPositionY, -30, 3, "power1.out"); err != nil {
		t.Fatal(err)
	}
	ts.Update(1.5)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, target)
	// Quadratic ease-out at half time is 0.75 of the way.
	if math.Abs(tr.Y-(-22.5)) > 1e-9 {
		t.Errorf("y at half time = %v, want -22.5", tr.Y)
	}
}

func TestTweenRejectsUnknown(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTweenSystem(em)
	target := newTweenTarget(em, 0, 1)

	if _, err := ts.Animate(target, "scale", 2, 1, "linear"); err == nil {
		t.Error("expected an error for an unknown property")
	}
	if _, err := ts.Animate(target, components.TweenOpacity, 0, 1, "bounce"); err == nil {
		t.Error("expected an error for an unknown easing")
	}
	if ts.ActiveCount() != 0 {
		t.Errorf("rejected tweens should not be created, got %d", ts.ActiveCount())
	}
}

func TestTweenZeroDuration(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTweenSystem(em)
	target := newTweenTarget(em, 5, 1)

	if _, err := ts.Animate(target, components.TweenOpacity, 0, 0, "linear"); err != nil {
		t.Fatal(err)
	}
	ts.Update(1.0 / 60)
	mat, _ := ecs.GetComponent[*components.MaterialComponent](em, target)
	if mat.Opacity != 0 {
		t.Errorf("opacity = %v, want 0", mat.Opacity)
	}
}

func TestTweenTargetDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTweenSystem(em)
	target := newTweenTarget(em, 5, 1)

	tid, _ := ts.Animate(target, components.TweenOpacity, 0, 1, "linear")
	em.DestroyEntity(target)
	em.RemoveMarkedEntities()

	ts.Update(0.1)
	em.RemoveMarkedEntities()
	if em.Exists(tid) {
		t.Error("tween of a destroyed target should be dropped")
	}
}

func TestTweenActiveCount(t *testing.T) {
	em, ids := newHeartWorld(t, 2)
	ts := NewTweenSystem(em)
	for _, id := range ids {
		ts.Animate(id, components.TweenPositionY, -30, 3, "power1.out")
		ts.Animate(id, components.TweenOpacity, 0, 3, "power1.out")
	}
	if got := ts.ActiveCount(); got != 50 {
		t.Errorf("active tweens = %d, want 50", got)
	}
}
