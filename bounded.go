package bounded

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bounds supplies the inclusive range an Integer must satisfy.
//
// A bounds carrier is a zero-sized struct whose Bounds method returns the
// range as two constants:
//
//	type Percent struct{}
//
//	func (Percent) Bounds() (min, max int64) { return 0, 100 }
//
// The carrier is part of the type: Integer values with different carriers are
// distinct types and cannot be mixed, which is what makes the range a
// compile-time property. Carriers must be zero-sized value types with a
// value-receiver Bounds method; anything else breaks the size guarantee and,
// for pointer carriers, panics on the nil zero value.
//
// A carrier that returns min > max describes an empty range: every instance
// of the resulting type is permanently out of range.
type Bounds[T constraints.Integer] interface {
	Bounds() (min, max T)
}

// Integer is an integer of width T restricted to the inclusive range supplied
// by the carrier B.
//
// Construction is total and never fails: a raw value outside the range
// produces an out-of-range instance instead of an error. Out-of-range
// instances flow through comparisons silently, with every equality and
// ordering check involving one reporting false, and surface only through
// Valid, Get, Checked and String.
//
// Integer stores nothing but the raw value; validity is computed on demand by
// range-checking against B. unsafe.Sizeof(Integer[T, B]{}) therefore equals
// unsafe.Sizeof(T) for every width and carrier, so the type can be embedded
// in packed structures at zero cost.
//
// The zero value is the instance constructed from raw 0, which is valid
// exactly when 0 lies within B's range.
//
// Do not compare Integer values with ==: the built-in comparison sees only
// the raw storage and would report two out-of-range instances as equal.
// Use Equal, Cmp or the comparison methods instead.
type Integer[T constraints.Integer, B Bounds[T]] struct {
	raw T
}

// rangeOf reads the carrier's bounds from its zero value.
func rangeOf[T constraints.Integer, B Bounds[T]]() (T, T) {
	var b B
	return b.Bounds()
}

// Valid reports whether the stored value lies within the type's range.
func (x Integer[T, B]) Valid() bool {
	lo, hi := rangeOf[T, B]()
	return x.raw >= lo && x.raw <= hi
}

// Get returns the stored value when it is in range.
// The second result is false for an out-of-range instance.
func (x Integer[T, B]) Get() (T, bool) {
	if !x.Valid() {
		var zero T
		return zero, false
	}
	return x.raw, true
}

// Checked returns the stored value, or an *OutOfRangeError describing the
// violation when the value is out of range.
func (x Integer[T, B]) Checked() (T, error) {
	lo, hi := rangeOf[T, B]()
	if x.raw < lo || x.raw > hi {
		var zero T
		return zero, &OutOfRangeError[T]{Value: x.raw, Min: lo, Max: hi}
	}
	return x.raw, nil
}

// Unchecked returns the stored raw value, bypassing the range check.
// For an out-of-range instance this is the value it was constructed from.
func (x Integer[T, B]) Unchecked() T { return x.raw }

// Min returns the smallest allowed value.
func (x Integer[T, B]) Min() T {
	lo, _ := rangeOf[T, B]()
	return lo
}

// Max returns the largest allowed value.
func (x Integer[T, B]) Max() T {
	_, hi := rangeOf[T, B]()
	return hi
}

// InRange reports whether v lies within the type's range. It does not
// depend on the receiver's stored value.
func (x Integer[T, B]) InRange(v T) bool {
	lo, hi := rangeOf[T, B]()
	return v >= lo && v <= hi
}

// String renders the stored value when it is in range, and the out-of-range
// diagnostic otherwise, so an invalid instance can never be mistaken for a
// valid zero or boundary value in logs.
func (x Integer[T, B]) String() string {
	lo, hi := rangeOf[T, B]()
	if x.raw < lo || x.raw > hi {
		return (&OutOfRangeError[T]{Value: x.raw, Min: lo, Max: hi}).Error()
	}
	return fmt.Sprintf("%d", x.raw)
}
