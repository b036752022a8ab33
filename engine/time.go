package engine

import (
	"time"
)

// VirtualTime tracks time.
//
// The progression of time can be scaled by setting the Scale field.
// This will scale the Delta and DeltaSecs values starting at the next frame.
type VirtualTime struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	Scale float64
}

// TimeUpdateStrategy configures how VirtualTime advances.
// With a ManualDelta of zero, the wall clock is used. Otherwise, each
// frame advances time by exactly ManualDelta, which makes frames reproducible.
type TimeUpdateStrategy struct {
	ManualDelta time.Duration
}

func updateVirtualTime(v *VirtualTime, strategy TimeUpdateStrategy, lastTime *Local[time.Time]) {
	var delta time.Duration

	if strategy.ManualDelta > 0 {
		delta = strategy.ManualDelta
	} else {
		now := time.Now()

		if lastTime.Value.IsZero() {
			lastTime.Value = now
			return
		}

		delta = now.Sub(lastTime.Value)
		lastTime.Value = now
	}

	if v.Scale != 1.0 {
		delta = time.Duration(float64(delta) * v.Scale)
	}

	v.Delta = delta
	v.DeltaSecs = v.Delta.Seconds()
	v.Elapsed += v.Delta
}
