package gm

import "math"

// Deg is an angle in degrees.
type Deg float64

// Radians returns the value of the angle in radians.
func (d Deg) Radians() float64 {
	return float64(d) * (math.Pi / 180)
}

// Normalized returns the angle normalized to the range [0, 360)
func (d Deg) Normalized() Deg {
	angle := math.Mod(float64(d), 360)
	if angle < 0 {
		angle += 360
	}

	return Deg(angle)
}
