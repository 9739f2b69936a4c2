// Package bounded provides integer types that carry an inclusive range at
// the type level.
//
// A bounded integer behaves like its raw counterpart for comparisons, but
// a value outside its range is never equal to, less than, or greater than
// anything. Construction is total: wrapping an out-of-range value succeeds
// and yields an instance that reports invalid instead of an error.
//
// # Quick Start
//
// Declare a zero-sized carrier whose Bounds method returns the range, then
// instantiate a width family with it:
//
//	type Rating struct{}
//
//	func (Rating) Bounds() (min, max int64) { return 2, 10 }
//
//	ok := bounded.NewI64[Rating](5)
//
//	ok.Equals(5)          // true
//	ok.GreaterOrEqual(4)  // true
//	ok.Less(100)          // true
//	ok.Greater(-100)      // true
//
// An out-of-range value flows through comparisons silently; every check
// involving it reports false:
//
//	bad := bounded.NewI64[Rating](11)
//
//	bad.Equals(11)  // false
//	bad.Greater(5)  // false
//	bad.Less(5)     // false
//	v, valid := bad.Get()  // 0, false
//
// # Comparing With Any Integer
//
// EqualsInteger and CompareInteger accept an integer of any width and
// signedness; a value that cannot be represented in the bounded type's
// width compares unequal and unordered:
//
//	bounded.EqualsInteger(ok, int8(5))     // true
//	bounded.EqualsInteger(ok, uint64(5))   // true
//	bounded.CompareInteger(ok, int32(100)) // -1, true
//
// # Comparing Bounded Values
//
// Equal and Cmp compare two values of the same bounded type. Out-of-range
// instances are never equal, not even to themselves, and never ordered;
// the out-of-range state behaves like a NaN of the integer domain. For the
// same reason the built-in == must not be used, since it sees only the raw
// storage.
//
//	a := bounded.NewI64[Rating](4)
//	b := bounded.NewI64[Rating](6)
//	bounded.Equal(a, b)  // false
//	bounded.Cmp(a, b)    // -1, true
//
// # Memory Use
//
// A bounded integer stores nothing but the raw value; validity is computed
// on demand from the carrier's range. Every instantiation is exactly the
// size of its underlying integer:
//
//	unsafe.Sizeof(bounded.NewI8[B8](0))   // 1
//	unsafe.Sizeof(bounded.NewI64[B64](0)) // 8
//
// # Arithmetic
//
// Deliberately absent. The sum of a possibly-out-of-range value has no
// sound definition: clamping, wrapping and panicking would each surprise
// someone. Extract with Get or Checked, compute on the raw integer, and
// wrap the result.
//
// # Key Features
//
//   - Total construction: no panics, no error returns on the happy path
//   - Validity derived on demand, never stored: zero bytes of overhead
//   - Strict partial order: out-of-range values are unorderable, not extreme
//   - Comparisons against every integer width and signedness
//   - Parsing with strconv semantics via ParseI64 and friends
//   - 128-bit families in the num128 subpackage
package bounded
