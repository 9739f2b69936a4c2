package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64 returns a pseudo-random int64 spanning the full signed domain.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(r.rand.Uint64())
}

// Int64InRange returns a pseudo-random int64 in the inclusive range [lo, hi].
// It panics when lo > hi, which in a test signals a broken range setup.
func (r *RNG) Int64InRange(lo, hi int64) int64 {
	if lo > hi {
		panic("testutil: Int64InRange called with lo > hi")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Two's complement subtraction yields the span width even when hi-lo
	// overflows int64; a span of 0 means the full domain.
	span := uint64(hi) - uint64(lo) + 1
	return lo + int64(r.uint64nLocked(span))
}

// Int64OutOfRange returns a pseudo-random int64 outside the inclusive range
// [lo, hi]. The second result is false when [lo, hi] covers the whole int64
// domain, in which case no out-of-range value exists.
func (r *RNG) Int64OutOfRange(lo, hi int64) (int64, bool) {
	if lo > hi {
		// An empty range excludes nothing.
		return r.Int64(), true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Counts of values strictly below lo and strictly above hi. The
	// subtractions wrap, which keeps the counts exact in uint64.
	below := uint64(lo - math.MinInt64)
	above := uint64(math.MaxInt64 - hi)
	total := below + above
	if total == 0 {
		return 0, false
	}

	k := r.uint64nLocked(total)
	if k < below {
		return math.MinInt64 + int64(k), true
	}
	return hi + 1 + int64(k-below), true
}

// Uint64InRange returns a pseudo-random uint64 in the inclusive range [lo, hi].
// It panics when lo > hi.
func (r *RNG) Uint64InRange(lo, hi uint64) uint64 {
	if lo > hi {
		panic("testutil: Uint64InRange called with lo > hi")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo + 1
	return lo + r.uint64nLocked(span)
}

// Uint64OutOfRange returns a pseudo-random uint64 outside the inclusive range
// [lo, hi]. The second result is false when [lo, hi] covers the whole uint64
// domain.
func (r *RNG) Uint64OutOfRange(lo, hi uint64) (uint64, bool) {
	if lo > hi {
		return r.Uint64(), true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	below := lo
	above := math.MaxUint64 - hi
	total := below + above
	if total == 0 {
		return 0, false
	}

	k := r.uint64nLocked(total)
	if k < below {
		return k, true
	}
	return hi + 1 + (k - below), true
}

// Int64sInRange generates num pseudo-random values, all within [lo, hi].
// Locks only once per call (preferred over calling Int64InRange in a loop).
func (r *RNG) Int64sInRange(num int, lo, hi int64) []int64 {
	if lo > hi {
		panic("testutil: Int64sInRange called with lo > hi")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	span := uint64(hi) - uint64(lo) + 1
	out := make([]int64, num)
	for i := range out {
		out[i] = lo + int64(r.uint64nLocked(span))
	}
	return out
}

// Int64sOutOfRange generates num pseudo-random values, none within [lo, hi].
// The second result is false when [lo, hi] covers the whole int64 domain.
func (r *RNG) Int64sOutOfRange(num int, lo, hi int64) ([]int64, bool) {
	out := make([]int64, num)
	for i := range out {
		v, ok := r.Int64OutOfRange(lo, hi)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// uint64nLocked returns an unbiased pseudo-random value in [0, n), or the
// full uint64 domain when n is 0 (caller must hold lock).
func (r *RNG) uint64nLocked(n uint64) uint64 {
	if n == 0 {
		return r.rand.Uint64()
	}

	// Rejection sampling to avoid modulo bias near the top of the domain.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := r.rand.Uint64()
		if v < limit {
			return v % n
		}
	}
}
