package ecs

import "reflect"

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent is the typed form of EntityManager.GetComponent.
//
//	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent is the typed form of EntityManager.HasComponent.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent is the typed form of EntityManager.RemoveComponent.
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 returns entities carrying a T1.
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 returns entities carrying both a T1 and a T2.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 returns entities carrying a T1, a T2 and a T3.
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// AddComponent is EntityManager.AddComponent with the component type checked
// at compile time.
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}
