package engine

import (
	"fmt"
	"reflect"
)

// SystemParam is an interface to give a type special behaviour when it is used
// as a parameter to a system.
//
// While a system is being prepared, the world checks each parameter if it fulfills
// the SystemParam interface. If a parameter type does, a new instance will be allocated
// and the init method will be called.
//
// See Local, ResOption, MessageReader or MessageWriter for some implementations of SystemParam.
type SystemParam interface {
	// init will be called while the system is being prepared.
	// It should setup everything as needed, e.g. allocate memory
	init(world *World) SystemParamState
}

// SystemParamState is the state produced by SystemParam.
type SystemParamState interface {
	// getValue returns the value that should be passed to the system.
	// It must be of the type returned by valueType.
	getValue() reflect.Value

	// valueType returns the exact type that getValue will return. This is used
	// while preparing
	valueType() reflect.Type
}

// valueSystemParamState is a simple implementation of SystemParamState
// that just returns a constant value
type valueSystemParamState reflect.Value

func (s valueSystemParamState) getValue() reflect.Value {
	return reflect.Value(s)
}

func (s valueSystemParamState) valueType() reflect.Type {
	return reflect.Value(s).Type()
}

// resourceSystemParamState looks up a resource each time the system runs,
// so resources may be inserted after the system was added.
type resourceSystemParamState struct {
	typ   reflect.Type
	world *World

	// true if the system wants the pointer type
	mutable bool
}

func makeResourceSystemParamState(world *World, typ reflect.Type) SystemParamState {
	r := resourceSystemParamState{
		world:   world,
		mutable: typ.Kind() == reflect.Pointer,
		typ:     typ,
	}

	if r.mutable {
		// if typ is a pointer, we reduce it to the type itself.
		r.typ = r.typ.Elem()
	}

	return r
}

func (r resourceSystemParamState) getValue() reflect.Value {
	ptrToValue, ok := r.world.resources[r.typ]
	if !ok {
		panic(fmt.Sprintf("Resource of type %s does not exist in world", r.typ))
	}

	if r.mutable {
		return ptrToValue
	}

	return ptrToValue.Elem()
}

func (r resourceSystemParamState) valueType() reflect.Type {
	if r.mutable {
		return reflect.PointerTo(r.typ)
	}

	return r.typ
}
