package subsetsum

import "errors"

// MaxLen is the largest input length Exhaustive accepts (n < 64).
const MaxLen = 63

// Sentinel errors. ErrEmptyInput and ErrTooLarge are panic values for
// precondition violations; the rest are returned by Validate.
var (
	// ErrEmptyInput indicates that Exhaustive was called with an empty sequence.
	ErrEmptyInput = errors.New("subsetsum: input sequence must be non-empty")

	// ErrTooLarge indicates more than MaxLen elements.
	ErrTooLarge = errors.New("subsetsum: input sequence must have fewer than 64 elements")

	// ErrEmptySubset indicates a candidate answer with no elements.
	ErrEmptySubset = errors.New("subsetsum: subset is empty")

	// ErrNotSubset indicates a candidate that is not a sub-multiset of the input.
	ErrNotSubset = errors.New("subsetsum: subset is not drawn from the input")

	// ErrSumMismatch indicates a candidate whose elements do not add up to the target.
	ErrSumMismatch = errors.New("subsetsum: subset sum differs from target")
)
