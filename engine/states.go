package engine

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
)

// maxTransitionsPerRun limits how many queued transitions of one state type
// are applied within a single run of the StateTransition schedule.
const maxTransitionsPerRun = 32

type StateType[S comparable] struct {
	InitialValue S

	// Values lists every valid value of S. Setting any other value panics.
	// If Values is empty, every value of S is accepted.
	Values []S
}

func (r StateType[S]) configureStateIn(app *App) {
	world := app.World()

	if _, exists := ResourceOf[State[S]](world); exists {
		panic(fmt.Sprintf("state %s is already initialized", reflect.TypeFor[S]()))
	}

	valid := validatorOf(r.Values)
	mustBeValid(valid, r.InitialValue)

	state := &State[S]{current: r.InitialValue}

	app.InsertResource(state)
	app.InsertResource(&NextState[S]{valid: valid})
	app.InsertResource(&stateHooks[S]{})
	app.InsertResource(&ScheduledTransition[S]{
		state: state,
		valid: valid,
		clock: MustResourceOf[VirtualTime](world),
	})

	app.AddSystems(StateTransition, tickScheduledTransitionSystem[S], performStateTransition[S])
}

type stateChangedScheduleId[S comparable] struct {
	stateType reflect.Type
	value     S

	enter bool
	exit  bool
}

func (stateChangedScheduleId[S]) isSchedule() {}

func (s stateChangedScheduleId[S]) String() string {
	if s.enter {
		return fmt.Sprintf("OnEnter(%v)", s.value)
	}

	return fmt.Sprintf("OnExit(%v)", s.value)
}

// OnEnter identifies the schedule run when State[S] becomes stateValue.
func OnEnter[S comparable](stateValue S) ScheduleId {
	return stateChangedScheduleId[S]{
		stateType: reflect.TypeFor[S](),
		value:     stateValue,
		enter:     true,
	}
}

// OnExit identifies the schedule run when State[S] stops being stateValue.
func OnExit[S comparable](stateValue S) ScheduleId {
	return stateChangedScheduleId[S]{
		stateType: reflect.TypeFor[S](),
		value:     stateValue,
		exit:      true,
	}
}

// State holds the active value of a state type. It only changes within the StateTransition schedule.
type State[S comparable] struct {
	current     S
	initialized bool
}

func (s State[S]) Current() S {
	return s.current
}

// NextState queues requests to change State[S]. Requests are applied in order
// during the next run of the StateTransition schedule.
type NextState[S comparable] struct {
	queue []S
	valid func(S) bool
}

// Set requests a transition to nextState. It panics if nextState is not a valid value of S.
func (n *NextState[S]) Set(nextState S) {
	mustBeValid(n.valid, nextState)
	n.queue = append(n.queue, nextState)
}

// Pending returns the first queued request, if any.
func (n *NextState[S]) Pending() (S, bool) {
	if len(n.queue) == 0 {
		var zeroState S
		return zeroState, false
	}

	return n.queue[0], true
}

func (n *NextState[S]) Clear() {
	clear(n.queue)
	n.queue = n.queue[:0]
}

func (n *NextState[S]) take() (S, bool) {
	next, ok := n.Pending()
	if ok {
		n.queue = slices.Delete(n.queue, 0, 1)
	}

	return next, ok
}

// stateHooks are run around the enter and exit schedules. Sub states use them
// to leave before and enter after their parent state.
type stateHooks[S comparable] struct {
	beforeExit []func(world *World, value S)
	afterEnter []func(world *World, value S)
}

func enterState[S comparable](world *World, hooks *stateHooks[S], value S) {
	world.RunSchedule(OnEnter(value))

	for _, hook := range hooks.afterEnter {
		hook(world, value)
	}
}

func exitState[S comparable](world *World, hooks *stateHooks[S], value S) {
	for _, hook := range hooks.beforeExit {
		hook(world, value)
	}

	world.RunSchedule(OnExit(value))
}

func performStateTransition[S comparable](
	world *World,
	state *State[S],
	nextState *NextState[S],
	hooks *stateHooks[S],
	scheduled *ScheduledTransition[S],
) {
	if !state.initialized {
		// we need to run the OnEnter schedule once
		state.initialized = true

		slog.Debug("Enter initial state",
			slog.String("type", reflect.TypeFor[S]().String()),
			slog.Any("state", state.current))

		enterState(world, hooks, state.current)
	}

	for count := 0; ; count++ {
		next, ok := nextState.take()
		if !ok {
			return
		}

		if count >= maxTransitionsPerRun {
			panic(fmt.Sprintf("transitions of state %s did not settle after %d steps", reflect.TypeFor[S](), count))
		}

		if next == state.current {
			continue
		}

		// keep the previous state value so we can trigger OnExit
		previousState := state.current

		exitState(world, hooks, previousState)
		scheduled.cancelOwnedBy(previousState)

		state.current = next
		logTransition(previousState, next)

		enterState(world, hooks, next)
	}
}

func logTransition[S comparable](from, to S) {
	slog.Debug("State transition",
		slog.String("type", reflect.TypeFor[S]().String()),
		slog.Any("from", from),
		slog.Any("to", to))
}

func validatorOf[S comparable](values []S) func(S) bool {
	if len(values) == 0 {
		return nil
	}

	values = slices.Clone(values)

	return func(value S) bool {
		return slices.Contains(values, value)
	}
}

func mustBeValid[S comparable](valid func(S) bool, value S) {
	if valid != nil && !valid(value) {
		panic(fmt.Sprintf("invalid value %v for state %s", value, reflect.TypeFor[S]()))
	}
}
