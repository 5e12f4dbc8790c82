package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/utils"
)

// specularStrength matches a dim grey specular color.
const specularStrength = 0.07

// HeartSprite is one heart ready to draw: projected, lit and faded.
type HeartSprite struct {
	Entity ecs.EntityID

	// X, Y is the projected center in surface pixels.
	X, Y float64
	// Size is the projected height of the heart outline in pixels.
	Size float64
	// ScaleX, ScaleY foreshorten the outline for the heart's rotation.
	ScaleX, ScaleY float64

	Color color.RGBA
	Alpha float64
	Depth float64
}

// NewLighting builds the light rig from the scene description.
func NewLighting(cfg config.LightsConfig) utils.Lighting {
	return utils.Lighting{
		Ambient: utils.Light{
			Color:     utils.MustParseHexColor(cfg.Ambient.Color),
			Intensity: cfg.Ambient.Intensity,
		},
		Directional: utils.Light{
			Color:     utils.MustParseHexColor(cfg.Directional.Color),
			Intensity: cfg.Directional.Intensity,
			Direction: cfg.Directional.Direction,
		},
	}
}

// HeartSprites projects and shades every visible heart, ordered back to
// front. Hearts outside the clip range or fully transparent are skipped.
func HeartSprites(em *ecs.EntityManager, cam *components.CameraComponent, lighting utils.Lighting) []HeartSprite {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.MaterialComponent](em)
	sprites := make([]HeartSprite, 0, len(ids))

	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		mat, _ := ecs.GetComponent[*components.MaterialComponent](em, id)
		if mat.Opacity <= 0 {
			continue
		}

		p, ok := ProjectPoint(cam, utils.Vec3{X: tr.X, Y: tr.Y, Z: tr.Z})
		if !ok {
			continue
		}

		lit := lighting.Shade(utils.Surface{
			Color:             mat.Color,
			Emissive:          mat.Emissive,
			EmissiveIntensity: mat.EmissiveIntensity,
			Shininess:         mat.Shininess,
			Specular:          specularStrength,
		}, utils.FacingNormal(tr.RotationX, tr.RotationY))

		sprites = append(sprites, HeartSprite{
			Entity: id,
			X:      p.X,
			Y:      p.Y,
			Size:   utils.HeartExtent * tr.Scale * p.PixelsPerUnit,
			ScaleX: math.Cos(tr.RotationY),
			ScaleY: math.Cos(tr.RotationX),
			Color:  lit,
			Alpha:  mat.Opacity,
			Depth:  p.Depth,
		})
	}

	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth > sprites[j].Depth
	})
	return sprites
}
