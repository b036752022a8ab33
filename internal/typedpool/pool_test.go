package typedpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsValue(t *testing.T) {
	pool := New[[]int]()

	value := pool.Get()
	require.NotNil(t, value)
	require.Empty(t, *value)
}

func TestPutResetsValue(t *testing.T) {
	pool := NewWithReset(func(values *[]string) {
		*values = (*values)[:0]
	})

	value := pool.Get()
	*value = append(*value, "Splash", "Loading")

	pool.Put(value)
	require.Empty(t, *value)
}
