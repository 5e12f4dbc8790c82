// Package ecs is the entity-component store shared by every system in the scene.
package ecs

import (
	"reflect"
	"sort"
)

// EntityID uniquely identifies an entity. Zero is never issued.
type EntityID uint64

// EntityManager owns all entities and their components.
//
// Destruction is deferred: DestroyEntity only marks an entity, and the
// component data is dropped by RemoveMarkedEntities at the end of a tick so
// that systems iterating the same frame never observe a half-removed entity.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal at the end of the tick
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// Exists reports whether the entity is still alive (possibly marked).
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// AddComponent attaches a component to an entity, replacing any component
// of the same dynamic type.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity carries a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities drops every entity marked by DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return len(em.components)
}

// GetEntitiesWith returns, in ascending ID order, every entity that carries
// all the given component types.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	// map order is random; systems and tests rely on creation order
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
