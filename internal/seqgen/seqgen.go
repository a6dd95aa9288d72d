// Package seqgen generates deterministic integer sequences for property tests
// and benchmarks.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Create one per test or benchmark.
package seqgen

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBadRange indicates a negative length or an empty value interval.
var ErrBadRange = errors.New("seqgen: require n >= 0 and lo <= hi")

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Ints returns n values drawn uniformly from the closed interval [lo, hi].
// If r==nil, the default deterministic stream is used.
// Panics with ErrBadRange if n < 0 or lo > hi.
//
// Complexity: O(n).
func Ints(r *rand.Rand, n, lo, hi int) []int {
	if n < 0 || lo > hi {
		panic(fmt.Errorf("%w: n=%d lo=%d hi=%d", ErrBadRange, n, lo, hi))
	}
	if r == nil {
		r = NewRand(0)
	}

	out := make([]int, n)
	width := hi - lo + 1
	var i int
	for i = 0; i < n; i++ {
		out[i] = lo + r.Intn(width)
	}

	return out
}

// Negatives returns n strictly negative values in [floor, -1].
// Panics with ErrBadRange if n < 0 or floor > -1.
func Negatives(r *rand.Rand, n, floor int) []int {
	return Ints(r, n, floor, -1)
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(r *rand.Rand, a []int) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = NewRand(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
