// Package subsetsum solves the Subset Sum Problem by exhaustive search: find a
// non-empty subset of a signed integer sequence whose elements add up to an
// exact target.
//
// Overview:
//
//   - Exhaustive enumerates every non-empty index subset as a uint64 bitmask
//     (bit j ↔ seq[j]) in increasing mask order and returns the first one whose
//     sum equals the target.
//   - Validate checks any candidate answer against its input and target.
//
// Result contract:
//
//   - A hit returns a fresh slice of the chosen values in index order, plus true.
//     Duplicates in the input are preserved.
//   - A miss returns (nil, false). The empty subset is never an answer, not even
//     for target 0, so a miss is always distinguishable from a result.
//
// Preconditions (programmer errors, reported by panic):
//
//   - ErrEmptyInput: the sequence is empty.
//   - ErrTooLarge:   the sequence has more than MaxLen (63) elements, the most a
//     single uint64 mask can enumerate.
//
// Performance:
//
//   - Time:   O(n·2ⁿ). Callers bound n well below MaxLen for interactive use.
//   - Memory: O(n) for the returned slice.
package subsetsum
