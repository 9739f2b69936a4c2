// Package testutil provides testing utilities for the bounded types.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source with generators that
// draw integers from inside or outside an inclusive range, which is what
// property-style tests over bounded types need.
//
// # Random Value Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Int64InRange(2, 10)        // always within [2, 10]
//	w, ok := rng.Int64OutOfRange(2, 10) // never within [2, 10]
//
// # Batch Generation
//
//	in := rng.Int64sInRange(1000, 2, 10)
//	out, ok := rng.Int64sOutOfRange(1000, 2, 10)
//
// The ok result is false when the range spans the whole domain and no
// out-of-range value exists.
package testutil
