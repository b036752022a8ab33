package engine

// InState returns a predicate that is true while the current value of State[S] equals expectedState.
func InState[S comparable](expectedState S) Systems {
	return System(func(state State[S]) bool {
		return state.Current() == expectedState
	})
}

func ResourceExists[T any](res ResOption[T]) bool {
	return res.Value != nil
}
