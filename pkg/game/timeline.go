package game

import "sort"

type timelineEntry struct {
	at  float64
	seq int
	fn  func()
}

// Timeline runs delayed callbacks off the scene clock.
//
// Callbacks fire once and cannot be canceled. Callbacks due in the same
// update fire in the order they were scheduled.
type Timeline struct {
	now     float64
	seq     int
	pending []*timelineEntry
}

// NewTimeline creates an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// After schedules fn to run delay seconds from now. A delay of zero or less
// runs fn on the next Update.
func (t *Timeline) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t.pending = append(t.pending, &timelineEntry{at: t.now + delay, seq: t.seq, fn: fn})
	t.seq++
}

// Update advances the clock by deltaTime seconds and runs everything due.
// Callbacks scheduled by a callback run no earlier than the next Update.
func (t *Timeline) Update(deltaTime float64) {
	t.now += deltaTime

	var due []*timelineEntry
	rest := t.pending[:0]
	for _, e := range t.pending {
		if e.at <= t.now+1e-9 {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	t.pending = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, e := range due {
		e.fn()
	}
}

// Pending returns the number of callbacks not yet run.
func (t *Timeline) Pending() int {
	return len(t.pending)
}

// Now returns the timeline clock in seconds.
func (t *Timeline) Now() float64 {
	return t.now
}
