package subarray

// MaxSubarrayLinear returns the non-empty contiguous span of seq with the
// maximum sum using Kadane's single pass.
//
// The current run is extended while its sum stays non-negative and restarted
// at the next index once it drops below zero. The best span is replaced only
// on a strictly greater sum, so the earliest-ending maximum wins.
//
// Panics with ErrEmptyInput if seq is empty.
//
// Complexity: O(n) time, O(1) extra space.
func MaxSubarrayLinear(seq []int) Span {
	n := len(seq)
	if n == 0 {
		panic(ErrEmptyInput)
	}

	var (
		bestStart, bestEnd = 0, 1
		bestSum            = seq[0]
		runStart           int
		running            int
		i                  int
	)
	for i = 0; i < n; i++ {
		running += seq[i]
		if running > bestSum {
			bestStart, bestEnd, bestSum = runStart, i+1, running
		}
		if running < 0 {
			running = 0
			runStart = i + 1
		}
	}

	return NewSpanWithSum(bestStart, bestEnd, bestSum)
}
