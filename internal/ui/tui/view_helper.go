package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/fibprime/internal/app/plot"
	"github.com/aalvaropc/fibprime/internal/app/template"
	"github.com/aalvaropc/fibprime/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderSequence(rep domain.Report, summary string, th Theme, width int) string {
	var b strings.Builder

	out, err := template.Summary(summary, rep)
	if err != nil {
		out = th.Toast.Render(userMessage(err)) + "\n" + "Sequence: " + template.JoinInts(rep.Sequence)
	}
	for _, line := range strings.Split(out, "\n") {
		b.WriteString(clampString(line, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Mode: %s\nBound: %d\nTerms: %d\n", rep.Mode, rep.Bound, rep.Terms()))
	return b.String()
}

func renderPrimes(rep domain.Report, th Theme, width int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Prime count: %d\n\n", rep.PrimeCount))
	if rep.PrimeCount == 0 {
		b.WriteString("  (none)\n")
	}
	for i, p := range rep.Primes {
		b.WriteString(fmt.Sprintf("  F(%d) = %s\n", rep.PrimeIndexes[i], th.Prime.Render(fmt.Sprint(p))))
	}

	b.WriteString("\n")
	b.WriteString(clampString(plot.Markers(rep.Terms(), rep.PrimeIndexes), width))
	b.WriteString("\n")
	return b.String()
}

// chartSize fits the configured canvas into the window when its size is known.
func chartSize(cfg domain.Config, winW, winH int) (int, int) {
	w, h := cfg.Plot.Width, cfg.Plot.Height
	if winW > 0 {
		w = min(w, winW-10)
	}
	if winH > 0 {
		h = min(h, winH-14)
	}
	return max(w, 2), max(h, 2)
}
