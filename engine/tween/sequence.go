// Package tween animates a single value through an ordered list of timed steps.
package tween

import (
	"fmt"
	"time"
)

// Step interpolates from Start to End over Duration using Ease.
type Step struct {
	Duration time.Duration
	Start    float64
	End      float64
	Ease     EaseFunction

	hold bool
}

func Tween(ease EaseFunction, duration time.Duration, start, end float64) Step {
	return Step{
		Duration: duration,
		Start:    start,
		End:      end,
		Ease:     ease,
	}
}

// Pause holds the value the previous step ended with. A leading pause holds
// the start value of the step following it.
func Pause(duration time.Duration) Step {
	return Step{Duration: duration, hold: true}
}

func (s Step) valueAt(local time.Duration) float64 {
	if s.Duration <= 0 {
		return s.End
	}

	f := s.Ease.apply(float64(local) / float64(s.Duration))
	return LerpFloat(f, s.Start, s.End)
}

// Sequence runs its steps strictly one after another. Once all steps
// are done, the sequence holds the End value of the last step.
type Sequence struct {
	steps   []Step
	total   time.Duration
	elapsed time.Duration
}

// NewSequence creates a new sequence. It panics if no steps are given or if a
// step has a negative duration.
func NewSequence(steps ...Step) *Sequence {
	if len(steps) == 0 {
		panic("sequence needs at least one step")
	}

	var total time.Duration

	for idx, step := range steps {
		if step.Duration < 0 {
			panic(fmt.Sprintf("step %d has negative duration %s", idx, step.Duration))
		}

		total += step.Duration
	}

	return &Sequence{
		steps: resolveHolds(steps),
		total: total,
	}
}

func resolveHolds(steps []Step) []Step {
	resolved := make([]Step, len(steps))
	copy(resolved, steps)

	// the value a leading pause holds
	var held float64
	for _, step := range resolved {
		if !step.hold {
			held = step.Start
			break
		}
	}

	for idx := range resolved {
		step := &resolved[idx]

		if step.hold {
			step.Start = held
			step.End = held
		}

		held = step.End
	}

	return resolved
}

// Tick advances the sequence by delta and returns the new value. Time left over
// at the end of a step is carried into the next one.
func (s *Sequence) Tick(delta time.Duration) float64 {
	s.elapsed = min(s.total, s.elapsed+delta)
	return s.Value()
}

func (s *Sequence) Value() float64 {
	return s.ValueAt(s.elapsed)
}

// ValueAt returns the value of the sequence at time t after its start.
func (s *Sequence) ValueAt(t time.Duration) float64 {
	if t >= s.total {
		return s.steps[len(s.steps)-1].End
	}

	if t <= 0 {
		return s.steps[0].Start
	}

	for _, step := range s.steps {
		if t < step.Duration {
			return step.valueAt(t)
		}

		t -= step.Duration
	}

	return s.steps[len(s.steps)-1].End
}

// StepIndex returns the index of the step that is active at the current time.
// It returns the number of steps once the sequence is finished.
func (s *Sequence) StepIndex() int {
	t := s.elapsed

	for idx, step := range s.steps {
		if t < step.Duration {
			return idx
		}

		t -= step.Duration
	}

	return len(s.steps)
}

func (s *Sequence) TotalDuration() time.Duration {
	return s.total
}

func (s *Sequence) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Sequence) Finished() bool {
	return s.elapsed >= s.total
}
