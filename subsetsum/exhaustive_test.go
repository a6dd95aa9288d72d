package subsetsum_test

import (
	"testing"

	"github.com/katalvlaran/seqopt/internal/seqgen"
	"github.com/katalvlaran/seqopt/subsetsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs fn and returns the error it panicked with, or nil if it did not panic.
func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		var ok bool
		err, ok = rec.(error)
		require.True(t, ok, "panic value must be an error, got %T", rec)
	}()
	fn()

	return nil
}

// TestExhaustive_Preconditions ensures empty and oversized inputs panic with
// the matching sentinel, and that MaxLen itself is still accepted.
func TestExhaustive_Preconditions(t *testing.T) {
	err := recoverErr(t, func() { subsetsum.Exhaustive(nil, 0) })
	assert.ErrorIs(t, err, subsetsum.ErrEmptyInput)

	err = recoverErr(t, func() { subsetsum.Exhaustive([]int{}, 1) })
	assert.ErrorIs(t, err, subsetsum.ErrEmptyInput)

	err = recoverErr(t, func() { subsetsum.Exhaustive(make([]int, 64), 0) })
	assert.ErrorIs(t, err, subsetsum.ErrTooLarge)

	// 63 elements is the upper bound; target hits on mask 1 so the search is instant.
	seq := make([]int, subsetsum.MaxLen)
	seq[0] = 9
	got, ok := subsetsum.Exhaustive(seq, 9)
	require.True(t, ok)
	assert.Equal(t, []int{9}, got)
}

// TestExhaustive_Scenarios checks pinned results under increasing-mask order.
func TestExhaustive_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		seq    []int
		target int
		want   []int
	}{
		// mask 0b00011 = {3, 7} is reached before {8, 2} (0b11000).
		{"first found", []int{3, 7, 1, 8, 2}, 10, []int{3, 7}},
		{"single element", []int{5}, 5, []int{5}},
		{"whole input", []int{1, 2, 4}, 7, []int{1, 2, 4}},
		{"negative target", []int{4, -6, 1}, -5, []int{-6, 1}},
		{"zero via cancellation", []int{5, -5}, 0, []int{5, -5}},
		{"zero element", []int{2, 0, 3}, 0, []int{0}},
		{"duplicates kept", []int{2, 2, 9}, 4, []int{2, 2}},
		// mask 0b011 = {1, 3} comes before mask 0b100 = {4}.
		{"lowest mask wins", []int{1, 3, 4}, 4, []int{1, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := subsetsum.Exhaustive(tc.seq, tc.target)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, subsetsum.Validate(tc.seq, got, tc.target))
		})
	}
}

// TestExhaustive_NotFound verifies that unreachable targets give (nil, false),
// including target 0 over strictly positive input.
func TestExhaustive_NotFound(t *testing.T) {
	cases := []struct {
		name   string
		seq    []int
		target int
	}{
		{"zero over positives", []int{3, 7, 1, 8, 2}, 0},
		{"too large", []int{3, 7, 1, 8, 2}, 22},
		{"gap", []int{2, 4, 6}, 5},
		{"single miss", []int{5}, 0},
		{"negatives miss positive", []int{-1, -2}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := subsetsum.Exhaustive(tc.seq, tc.target)
			assert.False(t, ok)
			assert.Nil(t, got, "absence must be nil, not an empty slice")
		})
	}
}

// TestExhaustive_RandomReachable builds achievable targets from a random
// non-empty subset and checks that a valid answer is always returned.
func TestExhaustive_RandomReachable(t *testing.T) {
	r := seqgen.NewRand(5)
	var (
		round  int
		n      int
		target int
		j      int
	)
	for round = 0; round < 200; round++ {
		n = 1 + r.Intn(12)
		seq := seqgen.Ints(r, n, -15, 15)

		// Pick a non-empty subset; its sum is reachable by construction.
		mask := 1 + r.Intn(1<<n-1)
		target = 0
		for j = 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				target += seq[j]
			}
		}

		got, ok := subsetsum.Exhaustive(seq, target)
		require.True(t, ok, "seq=%v target=%d", seq, target)
		require.NotEmpty(t, got)
		require.NoError(t, subsetsum.Validate(seq, got, target), "seq=%v got=%v", seq, got)
	}
}

// TestExhaustive_ResultIsCopy checks that the returned slice does not alias the input.
func TestExhaustive_ResultIsCopy(t *testing.T) {
	seq := []int{4, 6}
	got, ok := subsetsum.Exhaustive(seq, 4)
	require.True(t, ok)
	got[0] = 100
	assert.Equal(t, []int{4, 6}, seq)
}
