// Package subarray solves the Maximum Subarray Problem: find the contiguous,
// non-empty run of a signed integer sequence with the largest sum.
//
// 🚀 What is it?
//
//	Given seq = [−2, 1, −3, 4, −1, 2, 1, −5, 4] the answer is the run
//	[4, −1, 2, 1] with sum 6, reported as the half-open Span [3,7).
//	Typical uses:
//	  • best/worst streak detection in P&L or sensor series
//	  • signal segmentation (densest positive region)
//	  • a teaching baseline for divide-and-conquer recurrences
//
// ✨ Algorithms:
//   - MaxSubarrayExhaustive       : every (start, end) pair, O(n²) with a running sum.
//   - MaxSubarrayDivideAndConquer : split at the midpoint, solve halves and the
//     crossing case, O(n log n).
//   - MaxSubarrayLinear           : Kadane's single scan, O(n).
//   - Solve                       : dispatcher configured with functional options.
//
// Results:
//
//	Every algorithm returns a Span: a [Start, End) view over the caller's slice
//	plus its cached Sum. The slice is never copied or modified.
//
// Tie-breaking (several runs share the maximum sum):
//
//   - Exhaustive: the first run in scan order (lowest start, then lowest end).
//   - DivideAndConquer: precedence left half > crossing > right half; inside the
//     crossing case the leftmost start and rightmost end are preferred.
//   - Linear: the earliest run end; the start is where the current run began.
//
// Only the Sum is guaranteed to agree between algorithms on ties.
//
// Errors:
//
//	Empty input is a programmer error: every algorithm panics with ErrEmptyInput
//	before doing any work. Building a Span over an empty or inverted range panics
//	with ErrInvalidSpan.
//
// ⚙️ Usage:
//
//	span := subarray.Solve(seq, subarray.WithAlgorithm(subarray.Linear))
//	fmt.Println(span, span.Values(seq))
package subarray
