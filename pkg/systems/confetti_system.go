package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/proposal/internal/particle"
	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/entities"
	"github.com/decker502/proposal/pkg/utils"
)

// tickSeconds is one physics step.
const tickSeconds = 1 / entities.TicksPerSecond

// ConfettiSystem launches and moves burst confetti. It is the scene's
// burst launcher.
//
// Physics runs in fixed 60 Hz steps; lifetimes and fading are handled with
// the LifetimeSystem, which must run in the same scene.
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	physics       config.ConfettiConfig
	rng           *rand.Rand

	// width and height are the surface size bursts are placed on.
	width, height float64

	accumulator float64
	bursts      int
}

// NewConfettiSystem creates a confetti system for a surface of
// width x height layout pixels.
func NewConfettiSystem(em *ecs.EntityManager, physics config.ConfettiConfig, rng *rand.Rand, width, height int) *ConfettiSystem {
	return &ConfettiSystem{
		entityManager: em,
		physics:       physics,
		rng:           rng,
		width:         float64(width),
		height:        float64(height),
	}
}

// Resize changes the surface bursts are placed on.
func (s *ConfettiSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = float64(width), float64(height)
}

// Fire launches one burst. Colors cycle through opts.Colors; shapes are
// picked at random from opts.ShapesOrDefault().
func (s *ConfettiSystem) Fire(opts config.BurstOptions) {
	ox, oy := opts.OriginXY()
	x, y := ox*s.width, oy*s.height
	shapes := opts.ShapesOrDefault()

	colors := make([]color.RGBA, 0, len(opts.Colors))
	for _, c := range opts.Colors {
		parsed, err := utils.ParseHexColor(c)
		if err != nil {
			log.Printf("[ConfettiSystem] skipping color %q: %v", c, err)
			continue
		}
		colors = append(colors, parsed)
	}
	if len(colors) == 0 {
		log.Printf("[ConfettiSystem] burst has no usable colors, ignored")
		return
	}

	for i := 0; i < opts.ParticleCount; i++ {
		entities.NewConfetti(s.entityManager, entities.ConfettiSpawn{
			X:     x,
			Y:     y,
			Color: colors[i%len(colors)],
			Shape: shapes[s.rng.Intn(len(shapes))],
		}, opts.AngleOrDefault(), opts.Spread, s.physics, s.rng)
	}
	s.bursts++
	log.Printf("[ConfettiSystem] burst %d: %d particles at (%.0f, %.0f)", s.bursts, opts.ParticleCount, x, y)
}

// Bursts returns how many bursts have been fired.
func (s *ConfettiSystem) Bursts() int {
	return s.bursts
}

// ActiveCount returns the number of live confetti particles.
func (s *ConfettiSystem) ActiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiComponent](s.entityManager))
}

// Update runs as many physics steps as deltaTime covers and refreshes each
// particle's fade.
func (s *ConfettiSystem) Update(deltaTime float64) {
	s.accumulator += deltaTime
	steps := 0
	for s.accumulator+1e-9 >= tickSeconds {
		s.accumulator -= tickSeconds
		steps++
	}

	ids := ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		for i := 0; i < steps; i++ {
			StepConfetti(c, pos)
		}
		if life, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			c.Alpha = fade(s.physics.Fade, Progress(life))
		}
	}
}

// StepConfetti advances one particle by one 60 Hz tick.
func StepConfetti(c *components.ConfettiComponent, pos *components.PositionComponent) {
	pos.X += math.Cos(c.Angle2D)*c.Velocity + c.Drift
	pos.Y += math.Sin(c.Angle2D)*c.Velocity + c.Gravity
	c.Velocity *= c.Decay

	c.Wobble += c.WobbleSpeed
	c.TiltAngle += 0.1
	c.TiltSin, c.TiltCos = math.Sincos(c.TiltAngle)
}

func fade(curve particle.Curve, progress float64) float64 {
	if len(curve.Keyframes) == 0 {
		return 1 - progress
	}
	return utils.Clamp01(curve.Evaluate(progress))
}
