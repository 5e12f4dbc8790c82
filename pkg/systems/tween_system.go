package systems

import (
	"fmt"
	"log"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/utils"
)

// TweenSystem runs property tweens. Each tween is an entity carrying a
// TweenComponent; finished tweens are destroyed.
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem creates a tween system.
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Animate starts a tween of target's property toward to.
//
// The start value is read on the first update, so a tween created in the
// same tick as another system writes the property starts from that write.
//
// Parameters:
//   - target: animated entity
//   - property: components.TweenPositionY or components.TweenOpacity
//   - to: final value
//   - duration: seconds; zero or less jumps to the final value on the next update
//   - ease: easing name, see utils.EaseByName
//
// Returns:
//   - the tween entity ID
//   - an error for an unknown property or easing; no tween is created
func (s *TweenSystem) Animate(target ecs.EntityID, property string, to, duration float64, ease string) (ecs.EntityID, error) {
	switch property {
	case components.TweenPositionY, components.TweenOpacity:
	default:
		return 0, fmt.Errorf("unknown tween property %q", property)
	}
	fn, ok := utils.EaseByName(ease)
	if !ok {
		return 0, fmt.Errorf("unknown easing %q", ease)
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.TweenComponent{
		Target:   target,
		Property: property,
		To:       to,
		Duration: duration,
		Ease:     fn,
	})
	return id, nil
}

// IsAnimating reports whether an unfinished tween drives target's property.
func (s *TweenSystem) IsAnimating(target ecs.EntityID, property string) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager) {
		tw, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		if tw.Target == target && tw.Property == property && !tw.Done {
			return true
		}
	}
	return false
}

// ActiveCount returns the number of unfinished tweens.
func (s *TweenSystem) ActiveCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager) {
		tw, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		if !tw.Done {
			n++
		}
	}
	return n
}

// Update advances every tween by deltaTime seconds.
func (s *TweenSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager) {
		tw, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		if tw.Done {
			continue
		}

		channel, ok := s.channel(tw.Target, tw.Property)
		if !ok {
			// Target is gone.
			tw.Done = true
			s.entityManager.DestroyEntity(id)
			continue
		}

		if !tw.Started {
			tw.From = *channel
			tw.Started = true
		}

		tw.Elapsed += deltaTime
		p := 1.0
		if tw.Duration > 0 {
			p = utils.Clamp01(tw.Elapsed / tw.Duration)
		}
		*channel = utils.Lerp(tw.From, tw.To, tw.Ease(p))

		if p >= 1 {
			*channel = tw.To
			tw.Done = true
			s.entityManager.DestroyEntity(id)
			if tw.OnComplete != nil {
				tw.OnComplete()
			}
		}
	}
}

// channel returns a pointer to the float a property names.
func (s *TweenSystem) channel(target ecs.EntityID, property string) (*float64, bool) {
	switch property {
	case components.TweenPositionY:
		if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, target); ok {
			return &tr.Y, true
		}
	case components.TweenOpacity:
		if mat, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, target); ok {
			return &mat.Opacity, true
		}
	default:
		log.Printf("[TweenSystem] unknown property %q", property)
	}
	return nil, false
}
