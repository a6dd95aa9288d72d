package subarray

// MaxSubarrayExhaustive returns the non-empty contiguous span of seq with the
// maximum sum by trying every (start, end) pair.
//
// Algorithm:
//  1. For each start i in 0..n−1, extend a running sum one element at a time
//     to every end j ≥ i.
//  2. Replace the best span only when the running sum is strictly greater,
//     so the first span in scan order (lowest start, then lowest end) wins ties.
//
// All-negative input yields the single least-negative element.
// Panics with ErrEmptyInput if seq is empty.
//
// Complexity: O(n²) time, O(1) extra space.
func MaxSubarrayExhaustive(seq []int) Span {
	n := len(seq)
	if n == 0 {
		panic(ErrEmptyInput)
	}

	// Seed with the first element so the best span is never empty.
	var (
		bestStart, bestEnd = 0, 1
		bestSum            = seq[0]
		running            int
		i, j               int
	)
	for i = 0; i < n; i++ {
		running = 0
		for j = i; j < n; j++ {
			running += seq[j]
			if running > bestSum {
				bestStart, bestEnd, bestSum = i, j+1, running
			}
		}
	}

	return NewSpanWithSum(bestStart, bestEnd, bestSum)
}
