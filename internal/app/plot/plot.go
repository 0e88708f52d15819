// Package plot turns a Fibonacci report into terminal charts: a line chart of
// values by index, a polar spiral (angle = index, radius = sqrt(value)) and a
// strip marking the positions of primes.
package plot

import (
	"math"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
)

// Kind names a chart.
type Kind string

const (
	KindLine   Kind = "line"
	KindSpiral Kind = "spiral"
	KindPrimes Kind = "primes"
)

const (
	GlyphTerm  = '•'
	GlyphPrime = '*'
	GlyphEmpty = '·'
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindLine, KindSpiral, KindPrimes:
		return k, nil
	default:
		return "", domain.InvalidArgument("plot.parse_kind", "unsupported chart %q (expected line|spiral|primes)", s)
	}
}

// Point is a chart coordinate; Prime marks points drawn with GlyphPrime.
type Point struct {
	X, Y  float64
	Prime bool
}

// Line maps term i to (i, seq[i]).
func Line(seq []int64, primeIdx []int) []Point {
	primes := indexSet(primeIdx)
	out := make([]Point, len(seq))
	for i, v := range seq {
		out[i] = Point{X: float64(i), Y: float64(v), Prime: primes[i]}
	}
	return out
}

// Spiral maps term i to polar (theta = i radians, r = sqrt(seq[i])).
func Spiral(seq []int64, primeIdx []int) []Point {
	primes := indexSet(primeIdx)
	out := make([]Point, len(seq))
	for i, v := range seq {
		r := math.Sqrt(float64(v))
		theta := float64(i)
		out[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta), Prime: primes[i]}
	}
	return out
}

// Markers renders one cell per term, GlyphPrime where the term is prime.
func Markers(n int, primeIdx []int) string {
	primes := indexSet(primeIdx)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if primes[i] {
			b.WriteRune(GlyphPrime)
		} else {
			b.WriteRune(GlyphEmpty)
		}
	}
	return b.String()
}

// Render draws rep as the given chart kind on a width x height canvas.
// Options apply to line and spiral canvases.
func Render(kind Kind, rep domain.Report, width, height int, opts ...CanvasOption) (string, error) {
	switch kind {
	case KindPrimes:
		return Markers(len(rep.Sequence), rep.PrimeIndexes), nil
	case KindLine, KindSpiral:
		c, err := NewCanvas(width, height, opts...)
		if err != nil {
			return "", err
		}
		if kind == KindLine {
			c.Plot(Line(rep.Sequence, rep.PrimeIndexes))
		} else {
			c.Plot(Spiral(rep.Sequence, rep.PrimeIndexes))
		}
		return c.String(), nil
	default:
		return "", domain.InvalidArgument("plot.render", "unsupported chart %q", kind)
	}
}

// Prefix returns rep restricted to its first n terms. Used to animate a chart.
func Prefix(rep domain.Report, n int) domain.Report {
	if n < 0 {
		n = 0
	}
	if n > len(rep.Sequence) {
		n = len(rep.Sequence)
	}

	out := rep
	out.Sequence = rep.Sequence[:n]
	out.Primes = make([]int64, 0, len(rep.Primes))
	out.PrimeIndexes = make([]int, 0, len(rep.PrimeIndexes))
	for _, i := range rep.PrimeIndexes {
		if i < n {
			out.PrimeIndexes = append(out.PrimeIndexes, i)
			out.Primes = append(out.Primes, rep.Sequence[i])
		}
	}
	out.PrimeCount = len(out.Primes)
	return out
}

func indexSet(idx []int) map[int]bool {
	m := make(map[int]bool, len(idx))
	for _, i := range idx {
		m[i] = true
	}
	return m
}
