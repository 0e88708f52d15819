package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/aalvaropc/fibprime/internal/domain"
)

func TestAnalyze_TermCount(t *testing.T) {
	uc := NewAnalyze()
	rep, err := uc.Execute(context.Background(), domain.Request{Bound: 7, Mode: domain.ModeTerms})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(rep.Sequence, []int64{0, 1, 1, 2, 3, 5, 8}) {
		t.Fatalf("unexpected sequence %v", rep.Sequence)
	}
	if rep.PrimeCount != 3 {
		t.Fatalf("expected 3 primes, got %d", rep.PrimeCount)
	}
	if !slices.Equal(rep.Primes, []int64{2, 3, 5}) {
		t.Fatalf("unexpected primes %v", rep.Primes)
	}
	if !slices.Equal(rep.PrimeIndexes, []int{3, 4, 5}) {
		t.Fatalf("unexpected prime indexes %v", rep.PrimeIndexes)
	}
	if rep.Bound != 7 || rep.Mode != domain.ModeTerms {
		t.Fatalf("expected request echoed in report, got %d/%s", rep.Bound, rep.Mode)
	}
}

func TestAnalyze_ValueBound(t *testing.T) {
	rep, err := NewAnalyze().Execute(context.Background(), domain.Request{Bound: 100, Mode: domain.ModeMax})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last := rep.Sequence[len(rep.Sequence)-1]; last != 89 {
		t.Fatalf("expected greatest term 89, got %d", last)
	}
	if !slices.Equal(rep.Primes, []int64{2, 3, 5, 13, 89}) {
		t.Fatalf("unexpected primes %v", rep.Primes)
	}
}

func TestAnalyze_ZeroTermsHasEmptyLists(t *testing.T) {
	rep, err := NewAnalyze().Execute(context.Background(), domain.Request{Bound: 0, Mode: domain.ModeTerms})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Sequence == nil || rep.Primes == nil || rep.PrimeIndexes == nil {
		t.Fatalf("expected non-nil empty slices, got %#v", rep)
	}
	if rep.PrimeCount != 0 {
		t.Fatalf("expected 0 primes, got %d", rep.PrimeCount)
	}
}

func TestAnalyze_NegativeBound(t *testing.T) {
	rep, err := NewAnalyze().Execute(context.Background(), domain.Request{Bound: -5, Mode: domain.ModeTerms})
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
	if rep.Sequence != nil || rep.Primes != nil {
		t.Fatalf("expected zero report, got %#v", rep)
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyze().Execute(ctx, domain.Request{Bound: 5, Mode: domain.ModeTerms})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
