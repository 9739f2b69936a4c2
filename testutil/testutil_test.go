package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64InRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		v := rng.Int64InRange(2, 10)
		assert.GreaterOrEqual(t, v, int64(2))
		assert.LessOrEqual(t, v, int64(10))
	}
}

func TestInt64InRangeSingleValue(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		assert.Equal(t, int64(5), rng.Int64InRange(5, 5))
	}
}

func TestInt64InRangeFullDomain(t *testing.T) {
	rng := NewRNG(4711)

	// Just has to produce something without hanging or panicking.
	v := rng.Int64InRange(math.MinInt64, math.MaxInt64)
	assert.GreaterOrEqual(t, v, int64(math.MinInt64))
}

func TestInt64OutOfRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		v, ok := rng.Int64OutOfRange(2, 10)
		assert.True(t, ok)
		assert.True(t, v < 2 || v > 10, "value %d must be outside [2, 10]", v)
	}
}

func TestInt64OutOfRangeFullDomain(t *testing.T) {
	rng := NewRNG(4711)

	_, ok := rng.Int64OutOfRange(math.MinInt64, math.MaxInt64)
	assert.False(t, ok)
}

func TestInt64OutOfRangeBoundaryRanges(t *testing.T) {
	rng := NewRNG(4711)

	t.Run("range at domain top", func(t *testing.T) {
		for range 100 {
			v, ok := rng.Int64OutOfRange(0, math.MaxInt64)
			assert.True(t, ok)
			assert.Less(t, v, int64(0))
		}
	})

	t.Run("range at domain bottom", func(t *testing.T) {
		for range 100 {
			v, ok := rng.Int64OutOfRange(math.MinInt64, 0)
			assert.True(t, ok)
			assert.Greater(t, v, int64(0))
		}
	})
}

func TestUint64InRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		v := rng.Uint64InRange(2, 10)
		assert.GreaterOrEqual(t, v, uint64(2))
		assert.LessOrEqual(t, v, uint64(10))
	}
}

func TestUint64OutOfRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		v, ok := rng.Uint64OutOfRange(2, 10)
		assert.True(t, ok)
		assert.True(t, v < 2 || v > 10, "value %d must be outside [2, 10]", v)
	}

	_, ok := rng.Uint64OutOfRange(0, math.MaxUint64)
	assert.False(t, ok)
}

func TestInt64sInRange(t *testing.T) {
	rng := NewRNG(4711)

	vs := rng.Int64sInRange(64, -3, 3)

	assert.Equal(t, 64, len(vs))
	for _, v := range vs {
		assert.GreaterOrEqual(t, v, int64(-3))
		assert.LessOrEqual(t, v, int64(3))
	}
}

func TestInt64sOutOfRange(t *testing.T) {
	rng := NewRNG(4711)

	vs, ok := rng.Int64sOutOfRange(64, -3, 3)
	assert.True(t, ok)
	assert.Equal(t, 64, len(vs))
	for _, v := range vs {
		assert.True(t, v < -3 || v > 3)
	}

	_, ok = rng.Int64sOutOfRange(8, math.MinInt64, math.MaxInt64)
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Int64sInRange(10, 0, 1000)

	rng.Reset()
	v2 := rng.Int64sInRange(10, 0, 1000)

	assert.Equal(t, v1, v2)
}

func TestSeed(t *testing.T) {
	rng := NewRNG(99)
	assert.Equal(t, int64(99), rng.Seed())
}
