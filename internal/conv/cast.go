package conv

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// To converts v to the integer type Dst when the conversion loses no
// information. The second result is false when v overflows Dst or the
// conversion would flip its sign.
func To[Dst, Src constraints.Integer](v Src) (Dst, bool) {
	d := Dst(v)
	// A lossy conversion either fails the round trip or, for values like
	// uint64 math.MaxUint64 -> int64 -1, survives it with the sign flipped.
	if Src(d) != v || (d < 0) != (v < 0) {
		var zero Dst
		return zero, false
	}
	return d, true
}

// MaxOf returns the largest value representable by the integer type T.
//
// The math package only has constants for the fixed-width types; generic
// code needs the limit of whatever T it was instantiated with.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		return ^zero // unsigned: all bits set
	}
	bits := uint(unsafe.Sizeof(zero) * 8)
	return ^(T(1) << (bits - 1)) // signed: all bits but the sign bit
}

// MinOf returns the smallest value representable by the integer type T.
func MinOf[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		return zero // unsigned
	}
	bits := uint(unsafe.Sizeof(zero) * 8)
	return T(1) << (bits - 1) // signed: sign bit only
}
