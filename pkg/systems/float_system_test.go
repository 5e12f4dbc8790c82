package systems

import (
	"math"
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

const floatEpsilon = 1e-9

func TestFloatSystemFormula(t *testing.T) {
	em, ids := newHeartWorld(t, 11)
	fs := NewFloatSystem(em, nil)

	for _, tm := range []float64{0, 0.5, 12.25, 1700000000.123} {
		fs.SetClock(tm)
		fs.Apply(tm)
		for _, id := range ids {
			tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
			fm, _ := ecs.GetComponent[*components.FloatMotionComponent](em, id)

			want := []float64{
				fm.OriginX + math.Sin(tm*fm.DriftSpeedX*10)*fm.FloatDistance,
				fm.OriginY + math.Sin(tm*fm.DriftSpeedY*10)*fm.FloatDistance,
				fm.OriginZ + math.Sin(tm*fm.DriftSpeedZ*10)*fm.FloatDistance,
			}
			got := []float64{tr.X, tr.Y, tr.Z}
			for axis := range want {
				if math.Abs(got[axis]-want[axis]) > floatEpsilon {
					t.Errorf("t=%v heart %d axis %d: got %v, want %v", tm, id, axis, got[axis], want[axis])
				}
			}
		}
	}
}

func TestFloatSystemIsReproducible(t *testing.T) {
	emA, idsA := newHeartWorld(t, 99)
	emB, idsB := newHeartWorld(t, 99)
	NewFloatSystem(emA, nil).Apply(3.5)
	NewFloatSystem(emB, nil).Apply(3.5)

	for i := range idsA {
		a, _ := ecs.GetComponent[*components.TransformComponent](emA, idsA[i])
		b, _ := ecs.GetComponent[*components.TransformComponent](emB, idsB[i])
		if *a != *b {
			t.Fatalf("heart %d differs: %+v vs %+v", i, *a, *b)
		}
	}
}

func TestFloatSystemRotation(t *testing.T) {
	em, ids := newHeartWorld(t, 5)
	fs := NewFloatSystem(em, nil)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, ids[0])
	fm, _ := ecs.GetComponent[*components.FloatMotionComponent](em, ids[0])
	rx, ry := tr.RotationX, tr.RotationY

	fs.Update(1.0 / 60)
	if math.Abs(tr.RotationX-(rx+fm.RotationSpeedX)) > floatEpsilon {
		t.Errorf("rotation x = %v, want %v", tr.RotationX, rx+fm.RotationSpeedX)
	}
	if math.Abs(tr.RotationY-(ry+fm.RotationSpeedY)) > floatEpsilon {
		t.Errorf("rotation y = %v, want %v", tr.RotationY, ry+fm.RotationSpeedY)
	}

	for i := 0; i < 10000; i++ {
		fs.Update(1.0 / 60)
	}
	if tr.RotationX < 0 || tr.RotationX >= 2*math.Pi {
		t.Errorf("rotation x %v not wrapped to [0, 2π)", tr.RotationX)
	}
}

func TestFloatSystemClock(t *testing.T) {
	em, _ := newHeartWorld(t, 1)
	fs := NewFloatSystem(em, nil)
	fs.SetClock(2)
	fs.Update(0.5)
	if fs.Clock() != 2.5 {
		t.Errorf("clock = %v, want 2.5", fs.Clock())
	}
}

func TestFloatSystemYieldsYToTween(t *testing.T) {
	em, ids := newHeartWorld(t, 8)
	tweens := NewTweenSystem(em)
	fs := NewFloatSystem(em, tweens)
	heart := ids[0]

	fs.Update(1.0 / 60)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, heart)
	fm, _ := ecs.GetComponent[*components.FloatMotionComponent](em, heart)
	target := tr.Y - 30

	if _, err := tweens.Animate(heart, components.TweenPositionY, target, 1, "power1.out"); err != nil {
		t.Fatal(err)
	}

	dt := 1.0 / 60
	for i := 0; i < 30; i++ {
		tweens.Update(dt)
		y := tr.Y
		fs.Update(dt)
		if tr.Y != y {
			t.Fatalf("float system wrote y while a tween owned it (%v -> %v)", y, tr.Y)
		}
	}

	// Finish the tween; the next update rebases the origin and must not jump.
	for i := 0; i < 40; i++ {
		tweens.Update(dt)
		fs.Update(dt)
		em.RemoveMarkedEntities()
	}
	if tweens.IsAnimating(heart, components.TweenPositionY) {
		t.Fatal("tween should have finished")
	}

	before := tr.Y
	fs.Update(dt)
	if math.Abs(tr.Y-before) > fm.FloatDistance*math.Abs(fm.DriftSpeedY)*10*dt+floatEpsilon {
		t.Errorf("y jumped from %v to %v after the tween ended", before, tr.Y)
	}
	want := FloatOffset(fm.OriginY, fm.DriftSpeedY, fm.FloatDistance, fs.Clock())
	if math.Abs(tr.Y-want) > floatEpsilon {
		t.Errorf("oscillation did not resume around the rebased origin: y=%v want %v", tr.Y, want)
	}
	if math.Abs(fm.OriginY-target) > fm.FloatDistance+floatEpsilon {
		t.Errorf("rebased origin %v too far from tween target %v", fm.OriginY, target)
	}
}
