package sequence

import (
	"errors"
	"slices"
	"testing"

	"github.com/aalvaropc/fibprime/internal/domain"
)

func TestGenerateTerms(t *testing.T) {
	cases := []struct {
		bound int64
		want  []int64
	}{
		{0, []int64{}},
		{1, []int64{0}},
		{2, []int64{0, 1}},
		{7, []int64{0, 1, 1, 2, 3, 5, 8}},
		{10, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}},
	}
	for _, c := range cases {
		got, err := Generate(c.bound, domain.ModeTerms)
		if err != nil {
			t.Errorf("Generate(%d, terms) unexpected error: %v", c.bound, err)
			continue
		}
		if !slices.Equal(got, c.want) {
			t.Errorf("Generate(%d, terms) = %v, want %v", c.bound, got, c.want)
		}
	}
}

func TestGenerateTermsLengthAndRecurrence(t *testing.T) {
	for n := int64(0); n <= MaxTerms; n++ {
		got, err := Generate(n, domain.ModeTerms)
		if err != nil {
			t.Fatalf("Generate(%d) unexpected error: %v", n, err)
		}
		if int64(len(got)) != n {
			t.Fatalf("Generate(%d) length = %d", n, len(got))
		}
		for i := 2; i < len(got); i++ {
			if got[i] != got[i-1]+got[i-2] {
				t.Fatalf("Generate(%d): seq[%d]=%d is not %d+%d", n, i, got[i], got[i-1], got[i-2])
			}
		}
	}
}

func TestGenerateTermsLargestRepresentable(t *testing.T) {
	got, err := Generate(MaxTerms, domain.ModeTerms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last := got[len(got)-1]; last != 7540113804746346429 {
		t.Fatalf("expected F(92) as last term, got %d", last)
	}
}

func TestGenerateTermsOutOfRange(t *testing.T) {
	got, err := Generate(MaxTerms+1, domain.ModeTerms)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != nil {
		t.Fatalf("expected no partial output, got %v", got)
	}
	if !domain.IsKind(err, domain.KindOutOfRange) {
		t.Fatalf("expected KindOutOfRange, got %v", err)
	}
	if !errors.Is(err, domain.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange in chain")
	}
}

func TestGenerateMax(t *testing.T) {
	cases := []struct {
		bound int64
		want  []int64
	}{
		{0, []int64{0}},
		{1, []int64{0, 1, 1}},
		{4, []int64{0, 1, 1, 2, 3}},
		{10, []int64{0, 1, 1, 2, 3, 5, 8}},
		{13, []int64{0, 1, 1, 2, 3, 5, 8, 13}},
	}
	for _, c := range cases {
		got, err := Generate(c.bound, domain.ModeMax)
		if err != nil {
			t.Errorf("Generate(%d, max) unexpected error: %v", c.bound, err)
			continue
		}
		if !slices.Equal(got, c.want) {
			t.Errorf("Generate(%d, max) = %v, want %v", c.bound, got, c.want)
		}
	}
}

func TestGenerateMaxHugeBoundStopsAtLastRepresentable(t *testing.T) {
	const maxInt64 = int64(^uint64(0) >> 1)

	got, err := Generate(maxInt64, domain.ModeMax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxTerms {
		t.Fatalf("expected %d terms, got %d", MaxTerms, len(got))
	}
	for i, v := range got {
		if v < 0 {
			t.Fatalf("term %d overflowed: %d", i, v)
		}
	}
}

func TestGenerateNegativeBound(t *testing.T) {
	for _, mode := range []domain.Mode{domain.ModeTerms, domain.ModeMax} {
		got, err := Generate(-1, mode)
		if err == nil {
			t.Fatalf("%s: expected error", mode)
		}
		if got != nil {
			t.Fatalf("%s: expected no partial output, got %v", mode, got)
		}
		if !domain.IsKind(err, domain.KindInvalidArgument) {
			t.Fatalf("%s: expected KindInvalidArgument, got %v", mode, err)
		}
	}
}

func TestGenerateUnknownMode(t *testing.T) {
	_, err := Generate(5, domain.Mode("spiral"))
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
}

func TestTermsIsRestartable(t *testing.T) {
	seq, err := Terms(12, domain.ModeTerms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical passes, got %v and %v", first, second)
	}
}

func TestTermsStopsEarly(t *testing.T) {
	seq, err := Terms(50, domain.ModeTerms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []int64
	for v := range seq {
		if v > 10 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int64{0, 1, 1, 2, 3, 5, 8}) {
		t.Fatalf("unexpected prefix %v", got)
	}
}
