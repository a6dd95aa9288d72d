// Package seqopt is a small, dependency-free collection of classical
// optimization algorithms over integer sequences.
//
// 🚀 What is inside?
//
//	• subarray/  Maximum Subarray: exhaustive O(n²), divide-and-conquer
//	             O(n log n) and Kadane O(n), all returning a Span view with
//	             its cached sum
//	• subsetsum/ Subset Sum: exhaustive O(n·2ⁿ) bitmask search plus an
//	             answer validator
//
// ✨ Conventions shared by every package:
//
//   - Pure functions: inputs are borrowed read-only, nothing is cached globally.
//   - Deterministic tie-breaking, documented per algorithm.
//   - Programmer errors (empty input, oversized input) panic with a package
//     sentinel error; legitimate "no answer" outcomes are ordinary return values.
//
// Quick example:
//
//	seq := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
//	span := subarray.MaxSubarrayDivideAndConquer(seq) // [3,7) len=4 sum=6
//
//	pick, ok := subsetsum.Exhaustive([]int{3, 7, 1, 8, 2}, 10) // [3 7] true
//
//	go get github.com/katalvlaran/seqopt
package seqopt
