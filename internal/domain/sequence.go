package domain

import (
	"fmt"
	"strings"
)

// Mode selects the stopping rule used to generate a Fibonacci sequence.
type Mode string

const (
	// ModeTerms stops after exactly Bound terms.
	ModeTerms Mode = "terms"
	// ModeMax emits every term whose value does not exceed Bound.
	ModeMax Mode = "max"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeTerms || m == ModeMax
}

// ParseMode maps operator text onto a Mode. Aliases are accepted so that
// "count" and "value" read naturally on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terms", "term", "count", "n":
		return ModeTerms, nil
	case "max", "value", "bound":
		return ModeMax, nil
	default:
		return "", InvalidArgument("domain.parse_mode", "unsupported mode %q (expected terms|max)", s)
	}
}

// Request is the input of a single analysis.
type Request struct {
	Bound int64
	Mode  Mode
}

func (r Request) String() string {
	return fmt.Sprintf("%s=%d", r.Mode, r.Bound)
}

// Report is the outcome of generating a sequence and filtering its primes.
// Slices are never nil so JSON output always carries [] for empty lists.
type Report struct {
	Bound        int64   `json:"bound"`
	Mode         Mode    `json:"mode"`
	Sequence     []int64 `json:"sequence"`
	PrimeCount   int     `json:"prime_count"`
	Primes       []int64 `json:"primes"`
	PrimeIndexes []int   `json:"prime_indexes"`
}

// Terms returns the number of generated terms.
func (r Report) Terms() int {
	return len(r.Sequence)
}
