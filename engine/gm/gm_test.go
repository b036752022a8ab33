package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	rect := RectWithCenterAndSize(VecOf(100, 50), VecOf(20, 10))

	require.Equal(t, VecOf(90, 45), rect.Min)
	require.Equal(t, VecOf(20, 10), rect.Size())
	require.Equal(t, VecOf(100, 50), rect.Center())

	require.True(t, rect.Contains(VecOf(100, 50)))
	require.True(t, rect.Contains(VecOf(90, 45)))
	require.False(t, rect.Contains(VecOf(89, 50)))
	require.False(t, rect.Contains(VecOf(100, 56)))

	moved := rect.Translate(VecOf(10, 0))
	require.True(t, moved.Contains(VecOf(119, 50)))
}

func TestDegNormalized(t *testing.T) {
	require.InDelta(t, 10.0, float64(Deg(370).Normalized()), 1e-9)
	require.InDelta(t, 350.0, float64(Deg(-10).Normalized()), 1e-9)
	require.InDelta(t, 0.0, float64(Deg(360).Normalized()), 1e-9)
	require.InDelta(t, math.Pi, Deg(180).Radians(), 1e-9)
}

func TestVec(t *testing.T) {
	v := VecOf(3, 4)
	require.InDelta(t, 5.0, v.Length(), 1e-9)
	require.Equal(t, VecOf(6, 8), v.Mul(2))
	require.Equal(t, VecOf(2, 3), v.Sub(VecOf(1, 1)))
}
