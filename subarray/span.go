package subarray

import "fmt"

// Span is a non-empty half-open range [Start, End) over a sequence together
// with the sum of the elements it covers. It does not hold the elements.
//
// The zero Span is not valid; spans are built with NewSpan or NewSpanWithSum.
type Span struct {
	start int // inclusive
	end   int // exclusive
	sum   int // seq[start] + ... + seq[end-1]
}

// NewSpan builds the span [start, end) over seq and computes its sum.
// Panics with ErrInvalidSpan unless 0 <= start < end <= len(seq).
//
// Complexity: O(end − start).
func NewSpan(seq []int, start, end int) Span {
	if start < 0 || start >= end || end > len(seq) {
		panic(fmt.Errorf("%w: got [%d,%d) over %d elements", ErrInvalidSpan, start, end, len(seq)))
	}

	var (
		sum int
		i   int
	)
	for i = start; i < end; i++ {
		sum += seq[i]
	}

	return Span{start: start, end: end, sum: sum}
}

// NewSpanWithSum builds the span [start, end) with a sum already known to the caller.
// The sum is trusted, not recomputed. Panics with ErrInvalidSpan unless 0 <= start < end.
//
// Complexity: O(1).
func NewSpanWithSum(start, end, sum int) Span {
	if start < 0 || start >= end {
		panic(fmt.Errorf("%w: got [%d,%d)", ErrInvalidSpan, start, end))
	}

	return Span{start: start, end: end, sum: sum}
}

// Start returns the inclusive start index.
func (s Span) Start() int { return s.start }

// End returns the exclusive end index.
func (s Span) End() int { return s.end }

// Sum returns the cached sum of the covered elements.
func (s Span) Sum() int { return s.sum }

// Len returns the number of covered elements.
func (s Span) Len() int { return s.end - s.start }

// Equal reports whether s and other cover the same indices. Sums are not compared.
func (s Span) Equal(other Span) bool {
	return s.start == other.start && s.end == other.end
}

// Values returns the covered elements as a sub-slice of seq (shared, not copied).
// seq must be the sequence the span was computed over.
func (s Span) Values(seq []int) []int {
	return seq[s.start:s.end]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d) len=%d sum=%d", s.start, s.end, s.Len(), s.sum)
}
