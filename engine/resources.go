package engine

import "reflect"

// ResOption allows to inject a resource as a system param if it exists in the world.
// If the resource does not exist, the system will still run but a zero ResOption is injected.
type ResOption[T any] struct {
	Value *T
	world *World
}

func (r *ResOption[T]) init(world *World) SystemParamState {
	r.world = world
	return r
}

func (r *ResOption[T]) getValue() reflect.Value {
	r.Value, _ = ResourceOf[T](r.world)
	return reflect.ValueOf(r).Elem()
}

func (r *ResOption[T]) valueType() reflect.Type {
	return reflect.TypeFor[ResOption[T]]()
}
