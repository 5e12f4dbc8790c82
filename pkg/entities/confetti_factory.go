package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
)

// TicksPerSecond is the fixed update rate the confetti physics is tuned for.
const TicksPerSecond = 60.0

// ConfettiSpawn is one particle of a burst, before it becomes an entity.
type ConfettiSpawn struct {
	X, Y  float64
	Color color.RGBA
	Shape string
}

// NewConfetti creates one confetti particle entity.
//
// The launch direction is the burst angle (degrees, counter-clockwise from
// +x, so 90 is straight up) jittered by up to half the spread either side;
// the start velocity is between 0.5x and 1.5x phys.StartVelocity.
//
// Parameters:
//   - em: entity manager
//   - spawn: position in layout pixels, color and shape
//   - angleDeg, spreadDeg: burst direction and spread
//   - phys: shared confetti physics
//   - rng: random source
//
// Returns:
//   - the confetti entity ID
func NewConfetti(em *ecs.EntityManager, spawn ConfettiSpawn, angleDeg, spreadDeg float64, phys config.ConfettiConfig, rng *rand.Rand) ecs.EntityID {
	radAngle := angleDeg * math.Pi / 180
	radSpread := spreadDeg * math.Pi / 180

	c := &components.ConfettiComponent{
		Wobble:      rng.Float64() * 10,
		WobbleSpeed: math.Min(0.11, rng.Float64()*0.1+0.05),
		Velocity:    phys.StartVelocity*0.5 + rng.Float64()*phys.StartVelocity,
		Angle2D:     -radAngle + (0.5*radSpread - rng.Float64()*radSpread),
		TiltAngle:   (rng.Float64()*0.5 + 0.25) * math.Pi,
		Decay:       phys.Decay,
		Gravity:     phys.Gravity * 3,
		Drift:       phys.Drift,
		Size:        10 * phys.Scalar,
		Color:       spawn.Color,
		Shape:       spawn.Shape,
		Alpha:       1,
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: spawn.X, Y: spawn.Y})
	em.AddComponent(id, c)
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: float64(phys.Ticks) / TicksPerSecond,
	})
	return id
}
