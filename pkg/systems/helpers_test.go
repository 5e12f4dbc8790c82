package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/entities"
)

// newHeartWorld builds the default heart field with a fixed seed.
func newHeartWorld(t *testing.T, seed int64) (*ecs.EntityManager, []ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	ids := entities.NewHeartField(em, config.DefaultSceneConfig().Hearts, rand.New(rand.NewSource(seed)))
	return em, ids
}
