package bounded

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseI64(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		x, err := ParseI64[percent]("100")
		require.NoError(t, err)
		assert.True(t, x.Valid())
		assert.True(t, x.Equals(100))
	})

	t.Run("parseable but out of range", func(t *testing.T) {
		// Range violations are not parse errors; the silent
		// out-of-range state comes back instead.
		x, err := ParseI64[rating]("100")
		require.NoError(t, err)
		assert.False(t, x.Valid())
		assert.Equal(t, int64(100), x.Unchecked())
	})

	t.Run("negative", func(t *testing.T) {
		x, err := ParseI64[rating]("-7")
		require.NoError(t, err)
		assert.False(t, x.Valid())
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseI64[rating]("abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseI64[rating]("")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("width overflow", func(t *testing.T) {
		// Overflow of the underlying width is a parse error, unlike a
		// plain range violation.
		_, err := ParseI64[rating]("9223372036854775808")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})
}

func TestParseNarrowWidths(t *testing.T) {
	t.Run("i8", func(t *testing.T) {
		x, err := ParseI8[tinyI8]("-5")
		require.NoError(t, err)
		assert.True(t, x.Valid())

		_, err = ParseI8[tinyI8]("128")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("i16", func(t *testing.T) {
		x, err := ParseI16[i16Range]("-100")
		require.NoError(t, err)
		assert.True(t, x.Valid())

		_, err = ParseI16[i16Range]("40000")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("i32", func(t *testing.T) {
		x, err := ParseI32[i32Range]("99")
		require.NoError(t, err)
		assert.True(t, x.Equals(99))
	})

	t.Run("int", func(t *testing.T) {
		x, err := ParseInt[intRange]("-100")
		require.NoError(t, err)
		assert.True(t, x.Valid())
	})
}

func TestParseUnsigned(t *testing.T) {
	t.Run("u16", func(t *testing.T) {
		x, err := ParseU16[port]("8080")
		require.NoError(t, err)
		assert.True(t, x.Equals(8080))
	})

	t.Run("minus sign rejected", func(t *testing.T) {
		_, err := ParseU16[port]("-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("u8 u32 u64 uint", func(t *testing.T) {
		x8, err := ParseU8[u8Range]("15")
		require.NoError(t, err)
		assert.True(t, x8.Valid())

		x32, err := ParseU32[u32Range]("21")
		require.NoError(t, err)
		assert.False(t, x32.Valid())

		x64, err := ParseU64[u64Range]("10")
		require.NoError(t, err)
		assert.True(t, x64.Valid())

		xu, err := ParseUint[uintRange]("20")
		require.NoError(t, err)
		assert.True(t, xu.Valid())
	})
}

func TestParseWithBase(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		x, err := ParseI64[percent]("2a", WithBase(16))
		require.NoError(t, err)
		assert.True(t, x.Equals(42))
	})

	t.Run("binary", func(t *testing.T) {
		x, err := ParseU16[port]("1010", WithBase(2))
		require.NoError(t, err)
		assert.True(t, x.Equals(10))
	})

	t.Run("base zero infers from prefix", func(t *testing.T) {
		x, err := ParseI64[percent]("0x2a", WithBase(0))
		require.NoError(t, err)
		assert.True(t, x.Equals(42))
	})

	t.Run("default is base ten", func(t *testing.T) {
		_, err := ParseI64[percent]("0x2a")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("hex digits out of base", func(t *testing.T) {
		_, err := ParseI64[percent]("2a", WithBase(10))
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})
}

func TestParseAgreesWithConstruction(t *testing.T) {
	// Parsing then wrapping must be the same as converting the parsed raw.
	for _, s := range []string{"2", "5", "10", "1", "11", "0", "-3", "100"} {
		x, err := ParseI64[rating](s)
		require.NoError(t, err)

		raw, err := strconv.ParseInt(s, 10, 64)
		require.NoError(t, err)

		y := NewI64[rating](raw)
		assert.Equal(t, y.Valid(), x.Valid(), "input %q", s)
		assert.Equal(t, y.Unchecked(), x.Unchecked(), "input %q", s)
	}
}
