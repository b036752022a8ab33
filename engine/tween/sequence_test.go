package tween

import (
	"testing"
	"time"

	"github.com/juan-medina/dice-master/engine/color"
	"github.com/stretchr/testify/require"
)

func fade() *Sequence {
	return NewSequence(
		Tween(QuadraticIn, 2*time.Second, 0, 1),
		Pause(2*time.Second),
		Tween(QuadraticOut, time.Second, 1, 0),
	)
}

func TestSequenceBounds(t *testing.T) {
	seq := fade()

	require.Equal(t, 5*time.Second, seq.TotalDuration())
	require.Equal(t, 0.0, seq.ValueAt(0))
	require.Equal(t, 0.0, seq.ValueAt(5*time.Second))
	require.Equal(t, 0.0, seq.ValueAt(time.Hour))

	require.InDelta(t, 0.25, seq.ValueAt(time.Second), 1e-9)
	require.Equal(t, 1.0, seq.ValueAt(3*time.Second))
	require.InDelta(t, 0.25, seq.ValueAt(4500*time.Millisecond), 1e-9)
}

func TestSequenceContinuousAtBoundaries(t *testing.T) {
	seq := fade()

	const epsilon = time.Microsecond

	for _, boundary := range []time.Duration{2 * time.Second, 4 * time.Second} {
		before := seq.ValueAt(boundary - epsilon)
		after := seq.ValueAt(boundary)
		require.InDelta(t, before, after, 1e-5, "at %s", boundary)
	}
}

func TestSequenceTickCarriesOverflow(t *testing.T) {
	seq := fade()

	// 0.7s steps never line up with the step boundaries
	var ticks int
	for !seq.Finished() {
		seq.Tick(700 * time.Millisecond)
		ticks++
	}

	require.Equal(t, 8, ticks)
	require.Equal(t, 5*time.Second, seq.Elapsed())
	require.Equal(t, 0.0, seq.Value())
	require.Equal(t, 3, seq.StepIndex())

	// stays inert
	require.Equal(t, 0.0, seq.Tick(time.Second))
}

func TestSequenceStepIndex(t *testing.T) {
	seq := fade()
	require.Equal(t, 0, seq.StepIndex())

	seq.Tick(2500 * time.Millisecond)
	require.Equal(t, 1, seq.StepIndex())
	require.Equal(t, 1.0, seq.Value())

	seq.Tick(2 * time.Second)
	require.Equal(t, 2, seq.StepIndex())
}

func TestSequenceLeadingPause(t *testing.T) {
	seq := NewSequence(Pause(time.Second), Tween(Linear, time.Second, 3, 5))

	require.Equal(t, 3.0, seq.ValueAt(0))
	require.Equal(t, 3.0, seq.ValueAt(500*time.Millisecond))
	require.InDelta(t, 4.0, seq.ValueAt(1500*time.Millisecond), 1e-9)
}

func TestSequenceZeroDurations(t *testing.T) {
	seq := NewSequence(Tween(Linear, 0, 0, 1))

	// a sequence without any duration is finished right away
	require.True(t, seq.Finished())
	require.Equal(t, 1.0, seq.Value())
	require.Equal(t, 1.0, seq.Tick(time.Millisecond))
}

func TestSequenceInvalid(t *testing.T) {
	require.Panics(t, func() { NewSequence() })
	require.Panics(t, func() { NewSequence(Pause(-time.Second)) })
}

func TestEasingBounded(t *testing.T) {
	for _, ease := range []EaseFunction{Linear, QuadraticIn, QuadraticOut} {
		require.Equal(t, 0.0, ease.apply(-1))
		require.Equal(t, 0.0, ease.apply(0))
		require.Equal(t, 1.0, ease.apply(1))
		require.Equal(t, 1.0, ease.apply(2))

		// monotonic
		previous := 0.0
		for step := 1; step <= 100; step++ {
			value := ease.apply(float64(step) / 100)
			require.GreaterOrEqual(t, value, previous)
			previous = value
		}
	}
}

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, LerpFloat(0.5, 0.0, 10.0))
	require.Equal(t,
		color.RGBA(0.5, 0.5, 0.5, 1),
		LerpColor(0.5, color.Black, color.White))
}
