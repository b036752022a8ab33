package engine

import (
	"fmt"
	"reflect"
)

// World holds all resources, schedules and systems.
// While an empty World can be created using NewWorld, it is normally created and configured
// by using the App api.
type World struct {
	resources map[reflect.Type]reflect.Value
	schedules map[ScheduleId]*Schedule
}

// NewWorld creates a new empty world.
// You probably want to use the App api instead.
func NewWorld() *World {
	return &World{
		resources: map[reflect.Type]reflect.Value{},
		schedules: map[ScheduleId]*Schedule{},
	}
}

// InsertResource inserts a resource into the world, replacing any previous value of the same type.
// If res is a pointer, the world keeps that pointer, otherwise a copy of the value is stored.
func (w *World) InsertResource(res any) {
	value := reflect.ValueOf(res)
	if !value.IsValid() {
		panic("resource must not be nil")
	}

	if value.Kind() == reflect.Pointer {
		w.resources[value.Type().Elem()] = value
		return
	}

	ptrToValue := reflect.New(value.Type())
	ptrToValue.Elem().Set(value)

	w.resources[value.Type()] = ptrToValue
}

// Resource returns a pointer to the resource of the given type.
func (w *World) Resource(ty reflect.Type) (any, bool) {
	value, ok := w.resources[ty]
	if !ok {
		return nil, false
	}

	return value.Interface(), true
}

// RemoveResource removes the resource of the given type.
func (w *World) RemoveResource(ty reflect.Type) {
	delete(w.resources, ty)
}

// ResourceOf returns a pointer to the resource of type T.
func ResourceOf[T any](w *World) (*T, bool) {
	value, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	return value.Interface().(*T), true
}

// MustResourceOf is like ResourceOf but panics if the resource does not exist.
func MustResourceOf[T any](w *World) *T {
	res, ok := ResourceOf[T](w)
	if !ok {
		panic(fmt.Sprintf("resource of type %s does not exist in world", reflect.TypeFor[T]()))
	}

	return res
}

// AddSystems adds systems to a schedule within the world.
func (w *World) AddSystems(scheduleId ScheduleId, firstSystem AnySystem, systems ...AnySystem) {
	schedule := w.scheduleOf(scheduleId)

	systems = append([]AnySystem{firstSystem}, systems...)

	for _, config := range asSystemConfigs(systems...) {
		schedule.addSystem(w.prepareSystem(config))
	}
}

// RunSystem prepares and runs a system once. The first return value of
// the system is returned, or nil if the system does not return anything.
func (w *World) RunSystem(system AnySystem) any {
	configs := asSystemConfigs(system)
	if len(configs) != 1 {
		panic(fmt.Sprintf("expected exactly one system, got %d", len(configs)))
	}

	return w.runSystem(w.prepareSystem(configs[0]))
}

// RunSchedule runs the schedule identified by the given ScheduleId.
// If no schedule with this id exists, no action is performed.
func (w *World) RunSchedule(scheduleId ScheduleId) {
	schedule, ok := w.schedules[scheduleId]
	if !ok {
		return
	}

	// remove the schedule while it is executed
	delete(w.schedules, scheduleId)

	// add the schedule back once it has finished executing
	defer func() {
		if _, exists := w.schedules[scheduleId]; exists {
			panic(fmt.Sprintf("The schedule %q was modified while it is being executed", scheduleId))
		}

		w.schedules[scheduleId] = schedule
	}()

	for _, system := range schedule.systems {
		w.runSystem(system)
	}
}

func (w *World) scheduleOf(scheduleId ScheduleId) *Schedule {
	schedule, ok := w.schedules[scheduleId]
	if !ok {
		schedule = NewSchedule(scheduleId)
		w.schedules[scheduleId] = schedule
	}

	return schedule
}

func (w *World) runSystem(system *preparedSystem) any {
	for _, predicate := range system.predicates {
		result := w.runSystem(predicate)
		if ok, _ := result.(bool); !ok {
			// predicate evaluated to "do not run", stop execution here
			return nil
		}
	}

	return system.run()
}
