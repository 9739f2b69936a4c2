package bounded

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/snowpoke/bounded-types/internal/conv"
)

// Equals reports whether x holds a valid value equal to v.
//
// An out-of-range instance equals no raw value, including the one it was
// constructed from.
func (x Integer[T, B]) Equals(v T) bool {
	return x.Valid() && x.raw == v
}

// Compare orders the stored value against v. The second result is false when
// x is out of range, in which case no ordering relation holds.
func (x Integer[T, B]) Compare(v T) (int, bool) {
	if !x.Valid() {
		return 0, false
	}
	return cmp.Compare(x.raw, v), true
}

// Less reports whether x holds a valid value smaller than v.
func (x Integer[T, B]) Less(v T) bool {
	c, ok := x.Compare(v)
	return ok && c < 0
}

// LessOrEqual reports whether x holds a valid value smaller than or equal to v.
func (x Integer[T, B]) LessOrEqual(v T) bool {
	c, ok := x.Compare(v)
	return ok && c <= 0
}

// Greater reports whether x holds a valid value greater than v.
func (x Integer[T, B]) Greater(v T) bool {
	c, ok := x.Compare(v)
	return ok && c > 0
}

// GreaterOrEqual reports whether x holds a valid value greater than or equal to v.
func (x Integer[T, B]) GreaterOrEqual(v T) bool {
	c, ok := x.Compare(v)
	return ok && c >= 0
}

// Equal reports whether a and b hold equal valid values.
//
// Equality is deliberately non-reflexive for out-of-range instances: two
// out-of-range values never compare equal, not even when both were
// constructed from the same raw input. Out-of-range behaves like a NaN of
// the integer domain.
func Equal[T constraints.Integer, B Bounds[T]](a, b Integer[T, B]) bool {
	return a.Valid() && b.Valid() && a.raw == b.raw
}

// Cmp orders two bounded values of the same configuration. The second result
// is false when either side is out of range; out-of-range values are
// unorderable rather than sorting to an extreme.
func Cmp[T constraints.Integer, B Bounds[T]](a, b Integer[T, B]) (int, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	return cmp.Compare(a.raw, b.raw), true
}

// EqualsInteger reports whether x holds a valid value equal to v, where v may
// be an integer of any width and signedness. A v that cannot be represented
// in T compares unequal.
func EqualsInteger[T constraints.Integer, B Bounds[T], V constraints.Integer](x Integer[T, B], v V) bool {
	w, ok := conv.To[T](v)
	return ok && x.Equals(w)
}

// CompareInteger orders x against an integer of any width and signedness.
// The second result is false when x is out of range or v is not
// representable in T.
func CompareInteger[T constraints.Integer, B Bounds[T], V constraints.Integer](x Integer[T, B], v V) (int, bool) {
	w, ok := conv.To[T](v)
	if !ok {
		return 0, false
	}
	return x.Compare(w)
}
