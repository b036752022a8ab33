package tween

import (
	"github.com/juan-medina/dice-master/engine/color"
)

// LerpFloat interpolates linearly, f of 0 returns lhs and f of 1 returns rhs.
func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}

func LerpColor(f float64, lhs, rhs color.Color) color.Color {
	return color.Color{
		R: LerpFloat(f, lhs.R, rhs.R),
		G: LerpFloat(f, lhs.G, rhs.G),
		B: LerpFloat(f, lhs.B, rhs.B),
		A: LerpFloat(f, lhs.A, rhs.A),
	}
}
