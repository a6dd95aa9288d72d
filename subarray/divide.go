package subarray

// MaxSubarrayDivideAndConquer returns the non-empty contiguous span of seq with
// the maximum sum using a divide-and-conquer recursion.
//
// Algorithm (over inclusive bounds [low, high]):
//  1. Base case low == high: the single element at low.
//  2. middle = (low + high) / 2. Solve [low, middle] and [middle+1, high]
//     recursively, then the best span crossing middle in O(high − low).
//  3. Return the best of the three with precedence left > crossing > right.
//
// Panics with ErrEmptyInput if seq is empty.
//
// Complexity: O(n log n) time, O(log n) stack.
func MaxSubarrayDivideAndConquer(seq []int) Span {
	if len(seq) == 0 {
		panic(ErrEmptyInput)
	}

	return maxRecurse(seq, 0, len(seq)-1)
}

// maxRecurse solves the inclusive range [low, high]. Requires low <= high.
func maxRecurse(seq []int, low, high int) Span {
	if low == high {
		return NewSpanWithSum(low, low+1, seq[low])
	}

	// low <= middle < high, so both halves are non-empty.
	middle := (low + high) / 2
	left := maxRecurse(seq, low, middle)
	right := maxRecurse(seq, middle+1, high)
	crossing := maxCrossing(seq, low, middle, high)

	return pickBest(left, crossing, right)
}

// maxCrossing returns the best span that contains both seq[middle] and
// seq[middle+1]. Requires low <= middle < high.
//
// The left extension scans middle down to low and keeps the leftmost index on
// equal sums; the right extension scans middle+1 up to high and keeps the
// rightmost index on equal sums.
func maxCrossing(seq []int, low, middle, high int) Span {
	var (
		running   int
		leftSum   = seq[middle]
		bestLeft  = middle
		rightSum  = seq[middle+1]
		bestRight = middle + 1
		i         int
	)

	for i = middle; i >= low; i-- {
		running += seq[i]
		if running >= leftSum {
			leftSum, bestLeft = running, i
		}
	}

	running = 0
	for i = middle + 1; i <= high; i++ {
		running += seq[i]
		if running >= rightSum {
			rightSum, bestRight = running, i
		}
	}

	return NewSpanWithSum(bestLeft, bestRight+1, leftSum+rightSum)
}

// pickBest returns the candidate with the greatest sum. Ties go to left, then crossing.
func pickBest(left, crossing, right Span) Span {
	if left.sum >= crossing.sum && left.sum >= right.sum {
		return left
	}
	if crossing.sum >= right.sum {
		return crossing
	}

	return right
}
