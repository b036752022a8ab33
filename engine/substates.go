package engine

import (
	"fmt"
	"reflect"
)

// SubStateType registers a state S that only exists while State[P] is Parent.
//
// Outside of Parent, the sub state holds Inactive. Entering Parent moves it to
// InitialValue, leaving Parent exits the current sub state first and then resets it to Inactive.
type SubStateType[P comparable, S comparable] struct {
	Parent       P
	InitialValue S
	Inactive     S

	// Values lists every valid value of S, including Inactive.
	Values []S
}

type subStateConfig[P comparable, S comparable] struct {
	parent   P
	inactive S
}

func (r SubStateType[P, S]) configureStateIn(app *App) {
	world := app.World()

	parentHooks, ok := ResourceOf[stateHooks[P]](world)
	if !ok {
		panic(fmt.Sprintf("parent state %s must be initialized before sub state %s",
			reflect.TypeFor[P](), reflect.TypeFor[S]()))
	}

	if _, exists := ResourceOf[State[S]](world); exists {
		panic(fmt.Sprintf("state %s is already initialized", reflect.TypeFor[S]()))
	}

	if r.InitialValue == r.Inactive {
		panic(fmt.Sprintf("initial value of sub state %s must not be its inactive value", reflect.TypeFor[S]()))
	}

	valid := validatorOf(r.Values)
	mustBeValid(valid, r.InitialValue)
	mustBeValid(valid, r.Inactive)

	state := &State[S]{current: r.Inactive, initialized: true}
	nextState := &NextState[S]{valid: valid}
	hooks := &stateHooks[S]{}

	app.InsertResource(state)
	app.InsertResource(nextState)
	app.InsertResource(hooks)
	app.InsertResource(subStateConfig[P, S]{parent: r.Parent, inactive: r.Inactive})

	parentHooks.beforeExit = append(parentHooks.beforeExit, func(world *World, exiting P) {
		if exiting != r.Parent {
			return
		}

		// requests for a sub state of an exiting parent are meaningless
		nextState.Clear()

		if state.current == r.Inactive {
			return
		}

		previousState := state.current
		exitState(world, hooks, previousState)

		state.current = r.Inactive
		logTransition(previousState, r.Inactive)
	})

	parentHooks.afterEnter = append(parentHooks.afterEnter, func(world *World, entered P) {
		if entered != r.Parent {
			return
		}

		state.current = r.InitialValue
		logTransition(r.Inactive, r.InitialValue)

		enterState(world, hooks, r.InitialValue)
	})

	app.AddSystems(StateTransition, performSubStateTransition[P, S])
}

func performSubStateTransition[P comparable, S comparable](
	world *World,
	parent State[P],
	state *State[S],
	nextState *NextState[S],
	hooks *stateHooks[S],
	config subStateConfig[P, S],
) {
	for count := 0; ; count++ {
		next, ok := nextState.take()
		if !ok {
			return
		}

		if count >= maxTransitionsPerRun {
			panic(fmt.Sprintf("transitions of state %s did not settle after %d steps", reflect.TypeFor[S](), count))
		}

		parentActive := parent.Current() == config.parent

		switch {
		case !parentActive && next == config.inactive:
			// already inactive, nothing to do
			continue

		case !parentActive:
			panic(fmt.Sprintf("sub state %s can not become %v while %s is %v",
				reflect.TypeFor[S](), next, reflect.TypeFor[P](), parent.Current()))

		case next == config.inactive:
			panic(fmt.Sprintf("sub state %s can not become inactive while %s is %v",
				reflect.TypeFor[S](), reflect.TypeFor[P](), parent.Current()))

		case next == state.current:
			continue
		}

		previousState := state.current
		exitState(world, hooks, previousState)

		state.current = next
		logTransition(previousState, next)

		enterState(world, hooks, next)
	}
}
