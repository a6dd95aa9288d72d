package subarray

import (
	"errors"
	"fmt"
)

// Sentinel errors used as panic values for contract violations.
var (
	// ErrEmptyInput indicates that an algorithm was called with an empty sequence.
	ErrEmptyInput = errors.New("subarray: input sequence must be non-empty")

	// ErrInvalidSpan indicates a Span over an empty, inverted or out-of-range interval.
	ErrInvalidSpan = errors.New("subarray: span requires 0 <= start < end <= len(seq)")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the defined set.
	ErrUnknownAlgorithm = errors.New("subarray: unknown algorithm")
)

// Algorithm selects the maximum-subarray strategy used by Solve.
type Algorithm int

const (
	// Exhaustive scans every (start, end) pair. O(n²).
	Exhaustive Algorithm = iota

	// DivideAndConquer splits at the midpoint and merges via the crossing case. O(n log n).
	DivideAndConquer

	// Linear is Kadane's single pass. O(n).
	Linear
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case DivideAndConquer:
		return "divide-and-conquer"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// valid reports whether a is one of the defined algorithms.
func (a Algorithm) valid() bool {
	return a >= Exhaustive && a <= Linear
}

// Options configures Solve.
//
// Algorithm – strategy to run. Default is DivideAndConquer.
type Options struct {
	Algorithm Algorithm // Which maximum-subarray algorithm to dispatch to
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAlgorithm selects the algorithm used by Solve.
// Panics with ErrUnknownAlgorithm if a is not a defined Algorithm.
func WithAlgorithm(a Algorithm) Option {
	if !a.valid() {
		panic(ErrUnknownAlgorithm)
	}

	return func(o *Options) {
		o.Algorithm = a
	}
}

// DefaultOptions returns the Options used when Solve gets no overrides.
//
// Defaults:
//   - Algorithm: DivideAndConquer.
func DefaultOptions() Options {
	return Options{
		Algorithm: DivideAndConquer,
	}
}
