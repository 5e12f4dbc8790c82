package entities

import (
	"image/color"
	"math/rand"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/utils"
)

// NewHeartField creates the floating heart field: cfg.Count heart entities,
// each with a transform, a material and a float motion descriptor.
//
// Random values are drawn from rng in a fixed order per heart (color, x, y,
// z, scale, rotX, rotY, speedX, speedY, speedZ, rotSpeedX, rotSpeedY,
// floatDistance), so a given seed always produces the same field.
//
// Parameters:
//   - em: entity manager that owns the hearts
//   - cfg: validated heart field description
//   - rng: random source
//
// Returns:
//   - the heart entity IDs in creation order
func NewHeartField(em *ecs.EntityManager, cfg config.HeartsConfig, rng *rand.Rand) []ecs.EntityID {
	palette := cfg.PaletteColors()
	emissive := utils.MustParseHexColor(cfg.Material.Emissive)

	ids := make([]ecs.EntityID, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		ids = append(ids, newHeart(em, i, cfg, palette, emissive, rng))
	}
	return ids
}

func newHeart(em *ecs.EntityManager, index int, cfg config.HeartsConfig, palette []color.RGBA, emissive color.RGBA, rng *rand.Rand) ecs.EntityID {
	c := palette[int(rng.Float64()*float64(len(palette)))%len(palette)]

	x := (rng.Float64() - 0.5) * cfg.SpawnCube
	y := (rng.Float64() - 0.5) * cfg.SpawnCube
	z := (rng.Float64() - 0.5) * cfg.SpawnCube
	scale := cfg.Scale.Sample(rng)
	rotX := cfg.Rotation.Sample(rng)
	rotY := cfg.Rotation.Sample(rng)

	motion := &components.FloatMotionComponent{
		Index:          index,
		DriftSpeedX:    cfg.DriftSpeed.Sample(rng),
		DriftSpeedY:    cfg.DriftSpeed.Sample(rng),
		DriftSpeedZ:    cfg.DriftSpeed.Sample(rng),
		RotationSpeedX: cfg.RotationSpeed.Sample(rng),
		RotationSpeedY: cfg.RotationSpeed.Sample(rng),
		OriginX:        x,
		OriginY:        y,
		OriginZ:        z,
		FloatDistance:  cfg.FloatDistance.Sample(rng),
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{
		X: x, Y: y, Z: z,
		Scale:     scale,
		RotationX: rotX,
		RotationY: rotY,
	})
	em.AddComponent(id, &components.MaterialComponent{
		Color:             c,
		Emissive:          emissive,
		EmissiveIntensity: cfg.Material.EmissiveIntensity,
		Shininess:         cfg.Material.Shininess,
		Opacity:           cfg.Material.Opacity,
	})
	em.AddComponent(id, motion)
	return id
}
