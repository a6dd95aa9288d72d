package subsetsum

import (
	"fmt"
	"math/bits"
)

// Exhaustive returns the first non-empty subset of seq whose values sum to target.
//
// Algorithm:
//  1. Map index j to bit j of a uint64 mask.
//  2. Visit masks 1 .. 2ⁿ−1 in increasing order; mask 0 (the empty set) is skipped.
//  3. For each mask, sum the selected values; on the first exact match, copy
//     them out in index order.
//
// Returns (values, true) on success and (nil, false) when no subset matches.
// Panics with ErrEmptyInput if seq is empty and with ErrTooLarge if len(seq) > MaxLen.
//
// Complexity: O(n·2ⁿ) time, O(n) extra space.
func Exhaustive(seq []int, target int) ([]int, bool) {
	n := len(seq)
	if n == 0 {
		panic(ErrEmptyInput)
	}
	if n > MaxLen {
		panic(fmt.Errorf("%w: got %d", ErrTooLarge, n))
	}

	// n <= 63, so the shift cannot overflow.
	limit := uint64(1) << uint(n)
	var (
		mask uint64
		sum  int
		j    int
	)
	for mask = 1; mask < limit; mask++ {
		sum = 0
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				sum += seq[j]
			}
		}
		if sum == target {
			return collect(seq, mask), true
		}
	}

	return nil, false
}

// collect copies the values of seq selected by mask, in index order.
func collect(seq []int, mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	var j int
	for j = 0; j < len(seq); j++ {
		if mask&(1<<uint(j)) != 0 {
			out = append(out, seq[j])
		}
	}

	return out
}
