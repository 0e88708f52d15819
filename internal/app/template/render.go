package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
)

// RenderString replaces {{name}} placeholders with values from vars.
// Missing variables and malformed placeholders are invalid_config errors.
func RenderString(input string, vars map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(input))

	for rest := input; rest != ""; {
		open := strings.Index(rest, "{{")
		if open < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:open])

		body, tail, ok := strings.Cut(rest[open+2:], "}}")
		if !ok {
			return "", templateErr("unclosed placeholder at offset %d", len(input)-len(rest)+open)
		}

		key := strings.TrimSpace(body)
		if key == "" {
			return "", templateErr("empty placeholder")
		}
		val, found := vars[key]
		if !found {
			return "", templateErr("unknown placeholder %q", key)
		}
		out.WriteString(val)
		rest = tail
	}

	return out.String(), nil
}

// ReportVars exposes a report to summary templates.
func ReportVars(rep domain.Report) map[string]string {
	unit := "terms"
	if rep.Mode == domain.ModeMax {
		unit = "as max value"
	}
	return map[string]string{
		"bound":    strconv.FormatInt(rep.Bound, 10),
		"mode":     string(rep.Mode),
		"unit":     unit,
		"terms":    strconv.Itoa(rep.Terms()),
		"sequence": JoinInts(rep.Sequence),
		"count":    strconv.Itoa(rep.PrimeCount),
		"primes":   JoinInts(rep.Primes),
	}
}

// Summary renders rep through tmpl.
func Summary(tmpl string, rep domain.Report) (string, error) {
	return RenderString(tmpl, ReportVars(rep))
}

// JoinInts formats a sequence the way the summary line prints it: [0, 1, 1, 2].
func JoinInts(vals []int64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(']')
	return b.String()
}

func templateErr(format string, args ...any) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalidConfig),
	}
}
