package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 6, 8)

	assert.Equal(t, New(-3, -4, -5), a.Sub(b))
	assert.Equal(t, New(5, 8, 11), a.Add(b))
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
}

func TestPositionComponentAccess(t *testing.T) {
	p := New(1, 2, 3)
	assert.Equal(t, 1.0, p.At(0))
	assert.Equal(t, 2.0, p.At(1))
	assert.Equal(t, 3.0, p.At(2))

	require.Panics(t, func() { p.At(3) })
	require.Panics(t, func() { p.At(-1) })
}

func TestPositionLength(t *testing.T) {
	p := New(3, 4, 0)
	assert.Equal(t, 25.0, p.LengthSquared())
	assert.InDelta(t, 5.0, p.Length(), 1e-12)
}

func TestPositionDistance(t *testing.T) {
	a := New(0, 0, 0)
	b := New(1, 1, 1)
	assert.InDelta(t, math.Sqrt(3), a.Distance(b), 1e-12)
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestPositionEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2, 3.0000001)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
