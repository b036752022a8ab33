package engine

import (
	"log/slog"
	"reflect"
	"time"
)

// ScheduledTransition holds at most one pending, timer gated transition of State[S].
//
// Scheduling a transition while another one is pending replaces the previous one:
// the last write wins, requests are never queued. Once the timer finishes, the
// transition is removed and handed to NextState within the same StateTransition run.
// Leaving the state that was active when the transition was scheduled cancels it.
// The delay is measured in virtual time from the moment Schedule is called.
type ScheduledTransition[S comparable] struct {
	state *State[S]
	valid func(S) bool
	clock *VirtualTime

	pending bool
	target  S
	owner   S
	timer   Timer

	// virtual time the timer has been ticked up to
	tickedUntil time.Duration
}

// Schedule installs a transition to target that fires after delay.
func (s *ScheduledTransition[S]) Schedule(target S, delay time.Duration) {
	mustBeValid(s.valid, target)

	if s.pending {
		slog.Debug("Replace scheduled transition",
			slog.String("type", reflect.TypeFor[S]().String()),
			slog.Any("previous", s.target),
			slog.Any("target", target))
	}

	s.pending = true
	s.target = target
	s.timer = NewTimer(delay, TimerModeOnce)

	if s.clock != nil {
		s.tickedUntil = s.clock.Elapsed
	}

	if s.state != nil {
		s.owner = s.state.current
	}
}

// Cancel removes the pending transition, if any.
func (s *ScheduledTransition[S]) Cancel() {
	var zeroState S

	s.pending = false
	s.target = zeroState
	s.owner = zeroState
	s.timer = Timer{}
	s.tickedUntil = 0
}

// Pending returns the target of the pending transition.
func (s *ScheduledTransition[S]) Pending() (S, bool) {
	return s.target, s.pending
}

// Remaining returns the time until the pending transition fires.
func (s *ScheduledTransition[S]) Remaining() time.Duration {
	if !s.pending {
		return 0
	}

	return s.timer.Remaining()
}

func (s *ScheduledTransition[S]) cancelOwnedBy(state S) {
	if s.pending && s.state != nil && s.owner == state {
		slog.Debug("Cancel scheduled transition",
			slog.String("type", reflect.TypeFor[S]().String()),
			slog.Any("owner", state),
			slog.Any("target", s.target))

		s.Cancel()
	}
}

// tick advances the timer to the given virtual time. Time that passed before
// the transition was scheduled is not counted.
func (s *ScheduledTransition[S]) tick(elapsed time.Duration) (S, bool) {
	if !s.pending {
		var zeroState S
		return zeroState, false
	}

	delta := max(0, elapsed-s.tickedUntil)
	s.tickedUntil = elapsed

	if !s.timer.Tick(delta).Finished() {
		var zeroState S
		return zeroState, false
	}

	target := s.target
	s.Cancel()

	return target, true
}

func tickScheduledTransitionSystem[S comparable](
	vt VirtualTime,
	scheduled *ScheduledTransition[S],
	nextState *NextState[S],
) {
	if target, fired := scheduled.tick(vt.Elapsed); fired {
		nextState.Set(target)
	}
}
