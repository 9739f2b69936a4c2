package bounded

import (
	"fmt"
	"strconv"
)

// ParseI8 parses s as an int8 and wraps the result.
//
// Only lexical and width failures return an error; strconv semantics are
// preserved, so errors.Is works against strconv.ErrSyntax and
// strconv.ErrRange. A string that parses but lies outside B's range
// returns a nil error and an out-of-range instance, the same silent state
// construction produces.
func ParseI8[B Bounds[int8]](s string, opts ...ParseOption) (I8[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseInt(s, o.base, 8)
	if err != nil {
		return I8[B]{}, fmt.Errorf("parse bounded int8: %w", err)
	}
	return NewI8[B](int8(v)), nil
}

// ParseI16 parses s as an int16, in the manner of ParseI8.
func ParseI16[B Bounds[int16]](s string, opts ...ParseOption) (I16[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseInt(s, o.base, 16)
	if err != nil {
		return I16[B]{}, fmt.Errorf("parse bounded int16: %w", err)
	}
	return NewI16[B](int16(v)), nil
}

// ParseI32 parses s as an int32, in the manner of ParseI8.
func ParseI32[B Bounds[int32]](s string, opts ...ParseOption) (I32[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseInt(s, o.base, 32)
	if err != nil {
		return I32[B]{}, fmt.Errorf("parse bounded int32: %w", err)
	}
	return NewI32[B](int32(v)), nil
}

// ParseI64 parses s as an int64, in the manner of ParseI8.
func ParseI64[B Bounds[int64]](s string, opts ...ParseOption) (I64[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseInt(s, o.base, 64)
	if err != nil {
		return I64[B]{}, fmt.Errorf("parse bounded int64: %w", err)
	}
	return NewI64[B](v), nil
}

// ParseInt parses s as a platform-sized int, in the manner of ParseI8.
func ParseInt[B Bounds[int]](s string, opts ...ParseOption) (Int[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseInt(s, o.base, strconv.IntSize)
	if err != nil {
		return Int[B]{}, fmt.Errorf("parse bounded int: %w", err)
	}
	return NewInt[B](int(v)), nil
}

// ParseU8 parses s as a uint8, in the manner of ParseI8.
func ParseU8[B Bounds[uint8]](s string, opts ...ParseOption) (U8[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseUint(s, o.base, 8)
	if err != nil {
		return U8[B]{}, fmt.Errorf("parse bounded uint8: %w", err)
	}
	return NewU8[B](uint8(v)), nil
}

// ParseU16 parses s as a uint16, in the manner of ParseI8.
func ParseU16[B Bounds[uint16]](s string, opts ...ParseOption) (U16[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseUint(s, o.base, 16)
	if err != nil {
		return U16[B]{}, fmt.Errorf("parse bounded uint16: %w", err)
	}
	return NewU16[B](uint16(v)), nil
}

// ParseU32 parses s as a uint32, in the manner of ParseI8.
func ParseU32[B Bounds[uint32]](s string, opts ...ParseOption) (U32[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseUint(s, o.base, 32)
	if err != nil {
		return U32[B]{}, fmt.Errorf("parse bounded uint32: %w", err)
	}
	return NewU32[B](uint32(v)), nil
}

// ParseU64 parses s as a uint64, in the manner of ParseI8.
func ParseU64[B Bounds[uint64]](s string, opts ...ParseOption) (U64[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseUint(s, o.base, 64)
	if err != nil {
		return U64[B]{}, fmt.Errorf("parse bounded uint64: %w", err)
	}
	return NewU64[B](v), nil
}

// ParseUint parses s as a platform-sized uint, in the manner of ParseI8.
func ParseUint[B Bounds[uint]](s string, opts ...ParseOption) (Uint[B], error) {
	o := applyParseOptions(opts)
	v, err := strconv.ParseUint(s, o.base, strconv.IntSize)
	if err != nil {
		return Uint[B]{}, fmt.Errorf("parse bounded uint: %w", err)
	}
	return NewUint[B](uint(v)), nil
}
