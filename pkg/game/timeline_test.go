package game

import (
	"reflect"
	"testing"
)

func TestTimelineFiresOnceAtDelay(t *testing.T) {
	tl := NewTimeline()
	fired := 0
	tl.After(0.3, func() { fired++ })

	tl.Update(0.2)
	if fired != 0 {
		t.Fatal("fired too early")
	}
	tl.Update(0.1)
	if fired != 1 {
		t.Fatalf("fired %d times at the delay, want 1", fired)
	}
	tl.Update(10)
	if fired != 1 {
		t.Errorf("fired %d times, want exactly once", fired)
	}
	if tl.Pending() != 0 {
		t.Errorf("pending = %d, want 0", tl.Pending())
	}
}

func TestTimelineOrder(t *testing.T) {
	tl := NewTimeline()
	var order []string
	tl.After(0.6, func() { order = append(order, "c") })
	tl.After(0.6, func() { order = append(order, "d") })
	tl.After(0.3, func() { order = append(order, "b") })
	tl.After(0, func() { order = append(order, "a") })

	tl.Update(1)

	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTimelineScheduleFromCallback(t *testing.T) {
	tl := NewTimeline()
	ran := false
	tl.After(0, func() {
		tl.After(0, func() { ran = true })
	})

	tl.Update(1.0 / 60)
	if ran {
		t.Error("a callback scheduled by a callback ran in the same update")
	}
	tl.Update(1.0 / 60)
	if !ran {
		t.Error("nested callback never ran")
	}
}

func TestTimelineNegativeDelay(t *testing.T) {
	tl := NewTimeline()
	ran := false
	tl.After(-1, func() { ran = true })
	tl.Update(0)
	if !ran {
		t.Error("negative delay should run on the next update")
	}
}
