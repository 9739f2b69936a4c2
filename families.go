package bounded

import (
	"golang.org/x/exp/constraints"

	"github.com/snowpoke/bounded-types/internal/conv"
)

// The aliases below give each Go integer width its own bounded family, in
// the manner of the fixed-width type names: I64[B] is an int64 restricted
// to B's range. Int and Uint wrap the platform-sized types.

// I8 is an int8 restricted to the inclusive range supplied by B.
type I8[B Bounds[int8]] = Integer[int8, B]

// I16 is an int16 restricted to the inclusive range supplied by B.
type I16[B Bounds[int16]] = Integer[int16, B]

// I32 is an int32 restricted to the inclusive range supplied by B.
type I32[B Bounds[int32]] = Integer[int32, B]

// I64 is an int64 restricted to the inclusive range supplied by B.
type I64[B Bounds[int64]] = Integer[int64, B]

// Int is a platform-sized int restricted to the inclusive range supplied by B.
type Int[B Bounds[int]] = Integer[int, B]

// U8 is a uint8 restricted to the inclusive range supplied by B.
type U8[B Bounds[uint8]] = Integer[uint8, B]

// U16 is a uint16 restricted to the inclusive range supplied by B.
type U16[B Bounds[uint16]] = Integer[uint16, B]

// U32 is a uint32 restricted to the inclusive range supplied by B.
type U32[B Bounds[uint32]] = Integer[uint32, B]

// U64 is a uint64 restricted to the inclusive range supplied by B.
type U64[B Bounds[uint64]] = Integer[uint64, B]

// Uint is a platform-sized uint restricted to the inclusive range supplied by B.
type Uint[B Bounds[uint]] = Integer[uint, B]

// NewI8 wraps v. A v outside B's range yields an out-of-range instance;
// construction itself never fails.
func NewI8[B Bounds[int8]](v int8) I8[B] { return I8[B]{raw: v} }

// NewI16 wraps v, in the manner of NewI8.
func NewI16[B Bounds[int16]](v int16) I16[B] { return I16[B]{raw: v} }

// NewI32 wraps v, in the manner of NewI8.
func NewI32[B Bounds[int32]](v int32) I32[B] { return I32[B]{raw: v} }

// NewI64 wraps v, in the manner of NewI8.
func NewI64[B Bounds[int64]](v int64) I64[B] { return I64[B]{raw: v} }

// NewInt wraps v, in the manner of NewI8.
func NewInt[B Bounds[int]](v int) Int[B] { return Int[B]{raw: v} }

// NewU8 wraps v, in the manner of NewI8.
func NewU8[B Bounds[uint8]](v uint8) U8[B] { return U8[B]{raw: v} }

// NewU16 wraps v, in the manner of NewI8.
func NewU16[B Bounds[uint16]](v uint16) U16[B] { return U16[B]{raw: v} }

// NewU32 wraps v, in the manner of NewI8.
func NewU32[B Bounds[uint32]](v uint32) U32[B] { return U32[B]{raw: v} }

// NewU64 wraps v, in the manner of NewI8.
func NewU64[B Bounds[uint64]](v uint64) U64[B] { return U64[B]{raw: v} }

// NewUint wraps v, in the manner of NewI8.
func NewUint[B Bounds[uint]](v uint) Uint[B] { return Uint[B]{raw: v} }

// I8From converts an integer of any width or signedness into a bounded int8.
// Inputs that cannot be represented in the target width produce an
// out-of-range instance; see from for the stand-in rule.
func I8From[B Bounds[int8], V constraints.Integer](v V) I8[B] { return from[int8, B](v) }

// I16From converts any integer into a bounded int16, in the manner of I8From.
func I16From[B Bounds[int16], V constraints.Integer](v V) I16[B] { return from[int16, B](v) }

// I32From converts any integer into a bounded int32, in the manner of I8From.
func I32From[B Bounds[int32], V constraints.Integer](v V) I32[B] { return from[int32, B](v) }

// I64From converts any integer into a bounded int64, in the manner of I8From.
func I64From[B Bounds[int64], V constraints.Integer](v V) I64[B] { return from[int64, B](v) }

// IntFrom converts any integer into a bounded int, in the manner of I8From.
func IntFrom[B Bounds[int], V constraints.Integer](v V) Int[B] { return from[int, B](v) }

// U8From converts any integer into a bounded uint8, in the manner of I8From.
func U8From[B Bounds[uint8], V constraints.Integer](v V) U8[B] { return from[uint8, B](v) }

// U16From converts any integer into a bounded uint16, in the manner of I8From.
func U16From[B Bounds[uint16], V constraints.Integer](v V) U16[B] { return from[uint16, B](v) }

// U32From converts any integer into a bounded uint32, in the manner of I8From.
func U32From[B Bounds[uint32], V constraints.Integer](v V) U32[B] { return from[uint32, B](v) }

// U64From converts any integer into a bounded uint64, in the manner of I8From.
func U64From[B Bounds[uint64], V constraints.Integer](v V) U64[B] { return from[uint64, B](v) }

// UintFrom converts any integer into a bounded uint, in the manner of I8From.
func UintFrom[B Bounds[uint], V constraints.Integer](v V) Uint[B] { return from[uint, B](v) }

// from converts v to T when that loses no information, and otherwise stores
// a stand-in chosen to lie outside B's range, so the result reports invalid.
func from[T constraints.Integer, B Bounds[T], V constraints.Integer](v V) Integer[T, B] {
	w, ok := conv.To[T](v)
	if !ok {
		w = unrepresentable[T, B]()
	}
	return Integer[T, B]{raw: w}
}

// unrepresentable picks the raw stand-in for inputs that do not fit in T:
// the width maximum, or the width minimum when the range reaches up to the
// maximum. A range spanning the whole domain has no out-of-range raw at
// all; the width maximum is then stored as a valid value, the one corner
// the sentinel-free encoding cannot express.
func unrepresentable[T constraints.Integer, B Bounds[T]]() T {
	lo, hi := rangeOf[T, B]()
	top := conv.MaxOf[T]()
	if top < lo || top > hi {
		return top
	}
	bottom := conv.MinOf[T]()
	if bottom < lo || bottom > hi {
		return bottom
	}
	return top
}
