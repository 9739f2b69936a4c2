package num128

import (
	num "github.com/shabbyrobe/go-num"

	bounded "github.com/snowpoke/bounded-types"
)

// BoundsI128 supplies the inclusive range an I128 must satisfy.
//
// Carriers follow the same rules as bounded.Bounds: zero-sized value types
// with a value-receiver Bounds method. A carrier returning min > max
// describes an empty range.
type BoundsI128 interface {
	Bounds() (min, max num.I128)
}

// BoundsU128 supplies the inclusive range a U128 must satisfy.
type BoundsU128 interface {
	Bounds() (min, max num.U128)
}

// I128 is a 128-bit signed integer restricted to the inclusive range
// supplied by the carrier B.
//
// It carries the semantics of bounded.Integer at twice the width: total
// construction, validity derived on demand, out-of-range instances
// unequal and unordered against everything. The struct stores nothing but
// the two 64-bit words of the value, so unsafe.Sizeof is 16 for every
// carrier.
type I128[B BoundsI128] struct {
	raw num.I128
}

// U128 is a 128-bit unsigned integer restricted to the inclusive range
// supplied by the carrier B, in the manner of I128.
type U128[B BoundsU128] struct {
	raw num.U128
}

func rangeOfI128[B BoundsI128]() (num.I128, num.I128) {
	var b B
	return b.Bounds()
}

func rangeOfU128[B BoundsU128]() (num.U128, num.U128) {
	var b B
	return b.Bounds()
}

// NewI128 wraps v. A v outside B's range yields an out-of-range instance;
// construction itself never fails.
func NewI128[B BoundsI128](v num.I128) I128[B] { return I128[B]{raw: v} }

// I128From64 wraps a plain int64, in the manner of NewI128.
func I128From64[B BoundsI128](v int64) I128[B] {
	return I128[B]{raw: num.I128From64(v)}
}

// NewU128 wraps v, in the manner of NewI128.
func NewU128[B BoundsU128](v num.U128) U128[B] { return U128[B]{raw: v} }

// U128From64 wraps a plain uint64, in the manner of NewI128.
func U128From64[B BoundsU128](v uint64) U128[B] {
	return U128[B]{raw: num.U128From64(v)}
}

// U128FromI64 converts a signed value into a bounded U128. A negative v is
// not representable and produces an out-of-range instance holding a
// stand-in chosen to lie outside B's range.
func U128FromI64[B BoundsU128](v int64) U128[B] {
	w, inRange := num.U128FromI64(v)
	if !inRange {
		w = unrepresentableU128[B]()
	}
	return U128[B]{raw: w}
}

// maxU128 is the largest representable U128, the unsigned analog of the
// width-maximum stand-in used for unrepresentable conversions.
var maxU128 = num.U128FromRaw(^uint64(0), ^uint64(0))

// unrepresentableU128 picks the raw stand-in for inputs that do not fit:
// the domain maximum, or zero when the range reaches up to the maximum. A
// range spanning the whole domain has no out-of-range raw at all; the
// maximum is then stored as a valid value.
func unrepresentableU128[B BoundsU128]() num.U128 {
	lo, hi := rangeOfU128[B]()
	if maxU128.Cmp(lo) < 0 || maxU128.Cmp(hi) > 0 {
		return maxU128
	}
	var bottom num.U128
	if bottom.Cmp(lo) < 0 || bottom.Cmp(hi) > 0 {
		return bottom
	}
	return maxU128
}

// Valid reports whether the stored value lies within the type's range.
func (x I128[B]) Valid() bool {
	lo, hi := rangeOfI128[B]()
	return x.raw.Cmp(lo) >= 0 && x.raw.Cmp(hi) <= 0
}

// Get returns the stored value when it is in range.
func (x I128[B]) Get() (num.I128, bool) {
	if !x.Valid() {
		return num.I128{}, false
	}
	return x.raw, true
}

// Checked returns the stored value, or a *bounded.OutOfRangeError
// describing the violation when the value is out of range.
func (x I128[B]) Checked() (num.I128, error) {
	lo, hi := rangeOfI128[B]()
	if x.raw.Cmp(lo) < 0 || x.raw.Cmp(hi) > 0 {
		return num.I128{}, &bounded.OutOfRangeError[num.I128]{Value: x.raw, Min: lo, Max: hi}
	}
	return x.raw, nil
}

// Unchecked returns the stored raw value, bypassing the range check.
func (x I128[B]) Unchecked() num.I128 { return x.raw }

// Min returns the smallest allowed value.
func (x I128[B]) Min() num.I128 {
	lo, _ := rangeOfI128[B]()
	return lo
}

// Max returns the largest allowed value.
func (x I128[B]) Max() num.I128 {
	_, hi := rangeOfI128[B]()
	return hi
}

// InRange reports whether v lies within the type's range.
func (x I128[B]) InRange(v num.I128) bool {
	lo, hi := rangeOfI128[B]()
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// Equals reports whether x holds a valid value equal to v.
func (x I128[B]) Equals(v num.I128) bool {
	return x.Valid() && x.raw.Cmp(v) == 0
}

// Compare orders the stored value against v. The second result is false
// when x is out of range, in which case no ordering relation holds.
func (x I128[B]) Compare(v num.I128) (int, bool) {
	if !x.Valid() {
		return 0, false
	}
	return x.raw.Cmp(v), true
}

// Less reports whether x holds a valid value smaller than v.
func (x I128[B]) Less(v num.I128) bool {
	c, ok := x.Compare(v)
	return ok && c < 0
}

// LessOrEqual reports whether x holds a valid value smaller than or equal to v.
func (x I128[B]) LessOrEqual(v num.I128) bool {
	c, ok := x.Compare(v)
	return ok && c <= 0
}

// Greater reports whether x holds a valid value greater than v.
func (x I128[B]) Greater(v num.I128) bool {
	c, ok := x.Compare(v)
	return ok && c > 0
}

// GreaterOrEqual reports whether x holds a valid value greater than or equal to v.
func (x I128[B]) GreaterOrEqual(v num.I128) bool {
	c, ok := x.Compare(v)
	return ok && c >= 0
}

// String renders the stored value when it is in range, and the
// out-of-range diagnostic otherwise.
func (x I128[B]) String() string {
	lo, hi := rangeOfI128[B]()
	if x.raw.Cmp(lo) < 0 || x.raw.Cmp(hi) > 0 {
		return (&bounded.OutOfRangeError[num.I128]{Value: x.raw, Min: lo, Max: hi}).Error()
	}
	return x.raw.String()
}

// Valid reports whether the stored value lies within the type's range.
func (x U128[B]) Valid() bool {
	lo, hi := rangeOfU128[B]()
	return x.raw.Cmp(lo) >= 0 && x.raw.Cmp(hi) <= 0
}

// Get returns the stored value when it is in range.
func (x U128[B]) Get() (num.U128, bool) {
	if !x.Valid() {
		return num.U128{}, false
	}
	return x.raw, true
}

// Checked returns the stored value, or a *bounded.OutOfRangeError when
// the value is out of range.
func (x U128[B]) Checked() (num.U128, error) {
	lo, hi := rangeOfU128[B]()
	if x.raw.Cmp(lo) < 0 || x.raw.Cmp(hi) > 0 {
		return num.U128{}, &bounded.OutOfRangeError[num.U128]{Value: x.raw, Min: lo, Max: hi}
	}
	return x.raw, nil
}

// Unchecked returns the stored raw value, bypassing the range check.
func (x U128[B]) Unchecked() num.U128 { return x.raw }

// Min returns the smallest allowed value.
func (x U128[B]) Min() num.U128 {
	lo, _ := rangeOfU128[B]()
	return lo
}

// Max returns the largest allowed value.
func (x U128[B]) Max() num.U128 {
	_, hi := rangeOfU128[B]()
	return hi
}

// InRange reports whether v lies within the type's range.
func (x U128[B]) InRange(v num.U128) bool {
	lo, hi := rangeOfU128[B]()
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// Equals reports whether x holds a valid value equal to v.
func (x U128[B]) Equals(v num.U128) bool {
	return x.Valid() && x.raw.Cmp(v) == 0
}

// Compare orders the stored value against v, in the manner of
// I128.Compare.
func (x U128[B]) Compare(v num.U128) (int, bool) {
	if !x.Valid() {
		return 0, false
	}
	return x.raw.Cmp(v), true
}

// Less reports whether x holds a valid value smaller than v.
func (x U128[B]) Less(v num.U128) bool {
	c, ok := x.Compare(v)
	return ok && c < 0
}

// LessOrEqual reports whether x holds a valid value smaller than or equal to v.
func (x U128[B]) LessOrEqual(v num.U128) bool {
	c, ok := x.Compare(v)
	return ok && c <= 0
}

// Greater reports whether x holds a valid value greater than v.
func (x U128[B]) Greater(v num.U128) bool {
	c, ok := x.Compare(v)
	return ok && c > 0
}

// GreaterOrEqual reports whether x holds a valid value greater than or equal to v.
func (x U128[B]) GreaterOrEqual(v num.U128) bool {
	c, ok := x.Compare(v)
	return ok && c >= 0
}

// String renders the stored value when it is in range, and the
// out-of-range diagnostic otherwise.
func (x U128[B]) String() string {
	lo, hi := rangeOfU128[B]()
	if x.raw.Cmp(lo) < 0 || x.raw.Cmp(hi) > 0 {
		return (&bounded.OutOfRangeError[num.U128]{Value: x.raw, Min: lo, Max: hi}).Error()
	}
	return x.raw.String()
}

// EqualI128 reports whether a and b hold equal valid values. Out-of-range
// instances are never equal, not even to themselves.
func EqualI128[B BoundsI128](a, b I128[B]) bool {
	return a.Valid() && b.Valid() && a.raw.Cmp(b.raw) == 0
}

// CmpI128 orders two bounded values of the same configuration. The second
// result is false when either side is out of range.
func CmpI128[B BoundsI128](a, b I128[B]) (int, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	return a.raw.Cmp(b.raw), true
}

// EqualU128 reports whether a and b hold equal valid values, in the
// manner of EqualI128.
func EqualU128[B BoundsU128](a, b U128[B]) bool {
	return a.Valid() && b.Valid() && a.raw.Cmp(b.raw) == 0
}

// CmpU128 orders two bounded values of the same configuration, in the
// manner of CmpI128.
func CmpU128[B BoundsU128](a, b U128[B]) (int, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	return a.raw.Cmp(b.raw), true
}
