package subsetsum

import "fmt"

// Validate checks that subset is a correct answer for (seq, target):
// non-empty, a sub-multiset of seq, and summing to target.
//
// Errors (wrapped, test with errors.Is):
//   - ErrEmptySubset  if subset has no elements.
//   - ErrNotSubset    if some value occurs in subset more often than in seq.
//   - ErrSumMismatch  if the values do not add up to target.
//
// Complexity: O(n + k) time, O(n) space.
func Validate(seq, subset []int, target int) error {
	if len(subset) == 0 {
		return ErrEmptySubset
	}

	avail := make(map[int]int, len(seq))
	var v int
	for _, v = range seq {
		avail[v]++
	}

	var sum int
	for _, v = range subset {
		if avail[v] == 0 {
			return fmt.Errorf("%w: value %d", ErrNotSubset, v)
		}
		avail[v]--
		sum += v
	}

	if sum != target {
		return fmt.Errorf("%w: got %d, want %d", ErrSumMismatch, sum, target)
	}

	return nil
}
