package systems

import (
	"math"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/utils"
)

// Projection is a world point mapped to the render surface.
type Projection struct {
	// X, Y are surface pixels (y down).
	X, Y float64
	// PixelsPerUnit is how many pixels one world unit spans at this depth.
	PixelsPerUnit float64
	// Depth is the distance from the camera along the view axis.
	Depth float64
}

// CameraSystem owns the perspective camera entity.
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem creates the camera entity for a surface of width x height.
func NewCameraSystem(em *ecs.EntityManager, cfg config.CameraConfig, width, height int) *CameraSystem {
	cs := &CameraSystem{entityManager: em}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		FOV:  cfg.FOV,
		Near: cfg.Near,
		Far:  cfg.Far,
		Z:    cfg.Z,
	})
	cs.Resize(width, height)
	return cs
}

// Camera returns the camera component.
func (s *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	return cam
}

// Resize sets the aspect to width/height and the surface to (width, height).
// Non-positive sizes are ignored. Calling it again with the same size
// changes nothing.
func (s *CameraSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cam := s.Camera()
	if cam == nil {
		return
	}
	cam.ViewportWidth = width
	cam.ViewportHeight = height
	cam.Aspect = float64(width) / float64(height)
}

// Project maps a world point to surface pixels. ok is false for points
// outside the near/far range.
func (s *CameraSystem) Project(p utils.Vec3) (Projection, bool) {
	return ProjectPoint(s.Camera(), p)
}

// ProjectPoint maps a world point through cam.
func ProjectPoint(cam *components.CameraComponent, p utils.Vec3) (Projection, bool) {
	if cam == nil || cam.ViewportHeight == 0 {
		return Projection{}, false
	}
	depth := cam.Z - p.Z
	if depth < cam.Near || depth > cam.Far {
		return Projection{}, false
	}

	f := 1 / math.Tan(cam.FOV*math.Pi/180/2)
	ndcX := p.X * f / cam.Aspect / depth
	ndcY := p.Y * f / depth

	w := float64(cam.ViewportWidth)
	h := float64(cam.ViewportHeight)
	return Projection{
		X:             (ndcX + 1) / 2 * w,
		Y:             (1 - ndcY) / 2 * h,
		PixelsPerUnit: f / depth * h / 2,
		Depth:         depth,
	}, true
}
