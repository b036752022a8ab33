package engine

import (
	"fmt"
	"reflect"
	"runtime"
)

// AnySystem is a function with injectable parameters, a Systems value
// or a slice of SystemConfig values.
type AnySystem any

type AsSystemConfigs interface {
	AsSystemConfigs() []SystemConfig
}

type SystemConfig struct {
	Name string

	// the actual fn, must be a function
	fn         reflect.Value
	predicates []AnySystem
}

func asSystemConfig(value AnySystem) SystemConfig {
	switch value := value.(type) {
	case SystemConfig:
		return value

	default:
		fn := reflect.ValueOf(value)
		if fn.Kind() != reflect.Func {
			panic(fmt.Sprintf("system is not a function: %T", value))
		}

		return SystemConfig{
			Name: systemNameOf(fn),
			fn:   fn,
		}
	}
}

func asSystemConfigs(values ...AnySystem) []SystemConfig {
	var configs []SystemConfig

	for _, value := range values {
		switch value := value.(type) {
		case []SystemConfig:
			configs = append(configs, value...)

		case AsSystemConfigs:
			configs = append(configs, value.AsSystemConfigs()...)

		default:
			configs = append(configs, asSystemConfig(value))
		}
	}

	return configs
}

func systemNameOf(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		return f.Name()
	}

	return fn.Type().String()
}

// System groups one or more systems, so they can be configured together.
func System(systems ...AnySystem) Systems {
	return Systems{
		systems: systems,
	}
}

type Systems struct {
	systems    []AnySystem
	predicates []AnySystem
}

func (s Systems) AsSystemConfigs() []SystemConfig {
	systems := asSystemConfigs(s.systems...)

	for idx := range systems {
		system := &systems[idx]
		system.predicates = append(append([]AnySystem{}, system.predicates...), s.predicates...)
	}

	return systems
}

// RunIf adds a predicate to the systems. The predicate is a system
// itself and must return a bool. All predicates must return true for the systems to run.
func (s Systems) RunIf(predicate AnySystem) Systems {
	s.predicates = append(append([]AnySystem{}, s.predicates...), predicate)
	return s
}
