package systems

import (
	"math"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
)

// ChannelOwner reports whether something other than the float motion is
// driving an entity's property.
type ChannelOwner interface {
	IsAnimating(target ecs.EntityID, property string) bool
}

// FloatSystem moves the floating hearts.
//
// Positions are a pure function of the scene clock:
//
//	axis(t) = origin.axis + sin(t * driftSpeed.axis * 10) * floatDistance
//
// Rotation advances by the rotation speeds once per update.
//
// While the y channel is owned by a tween, y is left alone; when the tween
// releases it the heart's OriginY is rebased so the oscillation continues
// from the tweened height without a jump.
type FloatSystem struct {
	entityManager *ecs.EntityManager
	owner         ChannelOwner

	// clock is the scene time in seconds.
	clock float64

	// yOwned remembers which hearts had their y channel owned last update.
	yOwned map[ecs.EntityID]bool
}

// NewFloatSystem creates a float system. owner may be nil.
func NewFloatSystem(em *ecs.EntityManager, owner ChannelOwner) *FloatSystem {
	return &FloatSystem{
		entityManager: em,
		owner:         owner,
		yOwned:        make(map[ecs.EntityID]bool),
	}
}

// SetClock sets the scene time in seconds.
func (s *FloatSystem) SetClock(t float64) {
	s.clock = t
}

// Clock returns the scene time in seconds.
func (s *FloatSystem) Clock() float64 {
	return s.clock
}

// Update advances the clock by deltaTime and moves every heart.
func (s *FloatSystem) Update(deltaTime float64) {
	s.clock += deltaTime
	s.Apply(s.clock)
}

// Apply moves every heart to its position at time t and advances rotation
// one step.
func (s *FloatSystem) Apply(t float64) {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.FloatMotionComponent](s.entityManager)
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		fm, _ := ecs.GetComponent[*components.FloatMotionComponent](s.entityManager, id)

		tr.X = FloatOffset(fm.OriginX, fm.DriftSpeedX, fm.FloatDistance, t)
		tr.Z = FloatOffset(fm.OriginZ, fm.DriftSpeedZ, fm.FloatDistance, t)

		owned := s.owner != nil && s.owner.IsAnimating(id, components.TweenPositionY)
		switch {
		case owned:
			s.yOwned[id] = true
		case s.yOwned[id]:
			// Released this tick: keep the tweened height.
			delete(s.yOwned, id)
			fm.OriginY = tr.Y - math.Sin(t*fm.DriftSpeedY*10)*fm.FloatDistance
		default:
			tr.Y = FloatOffset(fm.OriginY, fm.DriftSpeedY, fm.FloatDistance, t)
		}

		tr.RotationX = wrapAngle(tr.RotationX + fm.RotationSpeedX)
		tr.RotationY = wrapAngle(tr.RotationY + fm.RotationSpeedY)
	}
}

// FloatOffset is one axis of the float motion at time t.
func FloatOffset(origin, driftSpeed, floatDistance, t float64) float64 {
	return origin + math.Sin(t*driftSpeed*10)*floatDistance
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
