package usecase

import (
	"context"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/usecase/primes"
	"github.com/aalvaropc/fibprime/internal/usecase/sequence"
)

type Analyze struct{}

func NewAnalyze() *Analyze {
	return &Analyze{}
}

// Execute generates the sequence described by req and filters its primes.
// A failed request yields a zero Report; there is no partial output.
func (uc *Analyze) Execute(ctx context.Context, req domain.Request) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	seq, err := sequence.Generate(req.Bound, req.Mode)
	if err != nil {
		return domain.Report{}, err
	}

	ps, idx := primes.Scan(seq)

	return domain.Report{
		Bound:        req.Bound,
		Mode:         req.Mode,
		Sequence:     seq,
		PrimeCount:   len(ps),
		Primes:       ps,
		PrimeIndexes: idx,
	}, nil
}
