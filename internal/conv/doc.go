// Package conv provides lossless integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Comparing a bounded value against an integer of a different width,
//     where silent truncation or a sign flip would corrupt the result
//   - Converting raw input of any integer type into a fixed-width storage type
//
// MaxOf and MinOf return the width limits of a generic integer type, for
// which the math package has no constants.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
