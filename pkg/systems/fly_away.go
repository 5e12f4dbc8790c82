package systems

import (
	"fmt"
	"log"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
)

// Animator starts property tweens. TweenSystem implements it.
type Animator interface {
	Animate(target ecs.EntityID, property string, to, duration float64, ease string) (ecs.EntityID, error)
}

// FlyAway starts the terminal animation of the heart field: every heart's
// y moves cfg.Drop world units down while its opacity goes to zero, both
// over cfg.Duration seconds.
//
// Returns:
//   - the number of tweens started (two per heart)
//   - the first tween error, after which no more tweens are started
func FlyAway(em *ecs.EntityManager, animator Animator, cfg config.FlyAwayConfig) (int, error) {
	started := 0
	ids := ecs.GetEntitiesWith3[*components.TransformComponent, *components.MaterialComponent, *components.FloatMotionComponent](em)
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		if _, err := animator.Animate(id, components.TweenPositionY, tr.Y-cfg.Drop, cfg.Duration, cfg.Ease); err != nil {
			return started, fmt.Errorf("fly away heart %d: %w", id, err)
		}
		started++
		if _, err := animator.Animate(id, components.TweenOpacity, 0, cfg.Duration, cfg.Ease); err != nil {
			return started, fmt.Errorf("fly away heart %d: %w", id, err)
		}
		started++
	}
	log.Printf("[FlyAway] %d hearts, %d tweens", len(ids), started)
	return started, nil
}
