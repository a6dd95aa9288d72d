package subarray

// Solve runs the maximum-subarray algorithm selected by opts over seq.
// With no options it uses DefaultOptions (DivideAndConquer).
//
// Panics with ErrEmptyInput if seq is empty, and with ErrUnknownAlgorithm if
// the configured Algorithm is not defined (possible only when an Option sets
// the field directly).
func Solve(seq []int, opts ...Option) Span {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	switch cfg.Algorithm {
	case Exhaustive:
		return MaxSubarrayExhaustive(seq)
	case DivideAndConquer:
		return MaxSubarrayDivideAndConquer(seq)
	case Linear:
		return MaxSubarrayLinear(seq)
	default:
		panic(ErrUnknownAlgorithm)
	}
}
