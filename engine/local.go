package engine

import "reflect"

// Local provides a value local to the system.
// It must be injected into a system as a pointer.
type Local[T any] struct {
	Value T
}

func (l *Local[T]) init(*World) SystemParamState {
	return valueSystemParamState(reflect.ValueOf(l))
}
