package tween

// EaseFunction maps the linear progress of a step in [0, 1] to the
// interpolation factor in [0, 1].
type EaseFunction func(t float64) float64

func Linear(t float64) float64 {
	return t
}

func QuadraticIn(t float64) float64 {
	return t * t
}

func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

func (ease EaseFunction) apply(t float64) float64 {
	t = clamp01(t)

	if ease == nil {
		return t
	}

	return clamp01(ease(t))
}

func clamp01(t float64) float64 {
	return min(1, max(0, t))
}
