// Package num128 provides the 128-bit families of the bounded types.
//
// Go has no native int128 or uint128, so these families are built on the
// I128 and U128 value types of github.com/shabbyrobe/go-num. Everything
// else matches the root package: a zero-sized carrier supplies the
// inclusive range, construction is total, validity is derived on demand,
// and out-of-range instances compare unequal and unordered against
// everything, themselves included.
//
//	type Rating struct{}
//
//	func (Rating) Bounds() (min, max num.I128) {
//		return num.I128From64(2), num.I128From64(10)
//	}
//
//	x := num128.I128From64[Rating](5)
//	x.Equals(num.I128From64(5)) // true
//
// Every instantiation is exactly 16 bytes, the size of the underlying
// 128-bit value.
package num128
