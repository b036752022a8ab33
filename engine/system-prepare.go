package engine

import (
	"fmt"
	"reflect"

	"github.com/juan-medina/dice-master/internal/typedpool"
)

var valueSlices = typedpool.NewWithReset(func(values *[]reflect.Value) {
	// clear any pointers that are still in the param slice
	clear(*values)
	*values = (*values)[:0]
})

var systemParamType = reflect.TypeFor[SystemParam]()

type preparedSystem struct {
	Name       string
	run        func() any
	predicates []*preparedSystem
}

func (w *World) prepareSystem(config SystemConfig) *preparedSystem {
	rSystem := config.fn

	if rSystem.Kind() != reflect.Func {
		panic(fmt.Sprintf("not a function: %s", rSystem.Type()))
	}

	prepared := &preparedSystem{Name: config.Name}

	for _, predicate := range asSystemConfigs(config.predicates...) {
		prepared.predicates = append(prepared.predicates, w.prepareSystem(predicate))
	}

	systemType := rSystem.Type()

	// collect the parameter states that prepare the systems parameters when called
	var params []SystemParamState

	for idx := range systemType.NumIn() {
		inType := systemType.In(idx)

		switch {
		case inType == reflect.TypeFor[*World]():
			params = append(params, valueSystemParamState(reflect.ValueOf(w)))

		case inType.Implements(systemParamType):
			params = append(params, makeSystemParamState(w, inType))

		case reflect.PointerTo(inType).Implements(systemParamType):
			params = append(params, makeSystemParamState(w, inType))

		case inType.Kind() == reflect.Pointer && inType.Elem().Kind() == reflect.Pointer:
			panic(fmt.Sprintf("Can not handle system param of type %s", inType))

		default:
			params = append(params, makeResourceSystemParamState(w, inType))
		}
	}

	// verify that all the param types match their actual types
	for idx, param := range params {
		inType := systemType.In(idx)
		if !param.valueType().AssignableTo(inType) {
			panic(fmt.Sprintf("Argument %d of %s is not assignable to param value of type %s", idx, config.Name, inType))
		}
	}

	prepared.run = func() any {
		paramValues := valueSlices.Get()
		defer valueSlices.Put(paramValues)

		for _, param := range params {
			*paramValues = append(*paramValues, param.getValue())
		}

		results := rSystem.Call(*paramValues)

		if len(results) == 0 {
			return nil
		}

		return results[0].Interface()
	}

	return prepared
}

func makeSystemParamState(world *World, ty reflect.Type) SystemParamState {
	for ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	// allocate a new instance on the heap and get the value as an interface
	param := reflect.New(ty).Interface().(SystemParam)

	// initialize using the world
	return param.init(world)
}
