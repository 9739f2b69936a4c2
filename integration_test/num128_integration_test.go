package integration_test

import (
	"errors"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bounded "github.com/snowpoke/bounded-types"
	"github.com/snowpoke/bounded-types/num128"
)

// wideRating mirrors rating at 128-bit width.
type wideRating struct{}

func (wideRating) Bounds() (min, max num.I128) {
	return num.I128From64(2), num.I128From64(10)
}

// TestWidthsShareErrorIdentity checks that 64-bit and 128-bit violations
// report through the same sentinel and render the same diagnostic.
func TestWidthsShareErrorIdentity(t *testing.T) {
	_, err64 := bounded.NewI64[rating](11).Checked()
	_, err128 := num128.I128From64[wideRating](11).Checked()

	require.Error(t, err64)
	require.Error(t, err128)
	assert.True(t, errors.Is(err64, bounded.ErrOutOfRange))
	assert.True(t, errors.Is(err128, bounded.ErrOutOfRange))
	assert.Equal(t, err64.Error(), err128.Error())
}

// TestWidthsAgreeOnSemantics runs the same values through both widths and
// expects identical observable behavior.
func TestWidthsAgreeOnSemantics(t *testing.T) {
	for v := int64(-2); v <= 14; v++ {
		narrow := bounded.NewI64[rating](v)
		wide := num128.I128From64[wideRating](v)

		assert.Equal(t, narrow.Valid(), wide.Valid(), "value %d", v)
		assert.Equal(t, narrow.Equals(v), wide.Equals(num.I128From64(v)), "value %d", v)
		assert.Equal(t, narrow.String(), wide.String(), "value %d", v)
	}
}

// TestParseBeyond64Bits confirms the 128-bit parser picks up where the
// 64-bit one overflows.
func TestParseBeyond64Bits(t *testing.T) {
	const pastInt64 = "9223372036854775808" // MaxInt64 + 1

	x, err := num128.ParseI128[wideRating](pastInt64)
	require.NoError(t, err)
	assert.False(t, x.Valid())
	assert.Equal(t, num.I128FromRaw(0, 1<<63), x.Unchecked())

	_, err = bounded.ParseI64[rating](pastInt64)
	assert.Error(t, err)
}
