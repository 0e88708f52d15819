// Package sequence generates Fibonacci sequences under a stopping rule.
package sequence

import (
	"fmt"
	"iter"
	"slices"

	"github.com/aalvaropc/fibprime/internal/domain"
)

// MaxTerms is the number of Fibonacci terms representable as int64: F(0)..F(92).
const MaxTerms = 93

// Terms returns a lazy iterator over the Fibonacci sequence for bound and mode.
//
// In domain.ModeTerms exactly bound terms are produced. In domain.ModeMax every
// term whose value is <= bound is produced. The iterator is a pure function of
// its arguments and may be ranged over any number of times.
//
// Invalid input is reported before any term is produced.
func Terms(bound int64, mode domain.Mode) (iter.Seq[int64], error) {
	if bound < 0 {
		return nil, domain.InvalidArgument("sequence.terms", "bound must be non-negative, got %d", bound)
	}

	switch mode {
	case domain.ModeTerms:
		if bound > MaxTerms {
			return nil, &domain.OpError{
				Op:   "sequence.terms",
				Kind: domain.KindOutOfRange,
				Err:  fmt.Errorf("%d terms requested, at most %d fit in 64 bits: %w", bound, MaxTerms, domain.ErrOutOfRange),
			}
		}
		return byCount(int(bound)), nil
	case domain.ModeMax:
		return byValue(bound), nil
	default:
		return nil, domain.InvalidArgument("sequence.terms", "unsupported mode %q", mode)
	}
}

// Generate collects Terms into a slice. The result is never nil.
func Generate(bound int64, mode domain.Mode) ([]int64, error) {
	seq, err := Terms(bound, mode)
	if err != nil {
		return nil, err
	}
	out := slices.Collect(seq)
	if out == nil {
		out = []int64{}
	}
	return out, nil
}

func byCount(n int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		a, b := int64(0), int64(1)
		for i := 0; i < n; i++ {
			if !yield(a) {
				return
			}
			// b wraps once a reaches F(92); it is never emitted.
			a, b = b, a+b
		}
	}
}

func byValue(limit int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		a, b := int64(0), int64(1)
		for i := 0; i < MaxTerms && a <= limit; i++ {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}
