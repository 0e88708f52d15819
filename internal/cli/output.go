package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/fibprime/internal/app/query"
	"github.com/aalvaropc/fibprime/internal/app/template"
	"github.com/aalvaropc/fibprime/internal/domain"
)

type reportOptions struct {
	format  string
	summary string
	query   string
}

func printReport(w io.Writer, rep domain.Report, opts reportOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if strings.TrimSpace(opts.query) != "" && format != "json" {
		return domain.InvalidArgument("cli.print", "--query requires --format json, got %q", format)
	}

	switch format {
	case "json":
		var payload any = rep
		if q := strings.TrimSpace(opts.query); q != "" {
			v, err := query.Report(rep, q)
			if err != nil {
				return err
			}
			payload = v
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "text":
		tmpl := opts.summary
		if tmpl == "" {
			tmpl = domain.DefaultSummary
		}
		out, err := template.Summary(tmpl, rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "pretty", "":
		printPrettyReport(w, rep)
		return nil
	default:
		return domain.InvalidArgument("cli.print", "unsupported format %q (expected pretty|json|text)", opts.format)
	}
}

func printPrettyReport(w io.Writer, rep domain.Report) {
	fmt.Fprintf(w, "Mode:      %s\n", rep.Mode)
	fmt.Fprintf(w, "Bound:     %d\n", rep.Bound)
	fmt.Fprintf(w, "Terms:     %d\n", rep.Terms())
	fmt.Fprintf(w, "Sequence:  %s\n", template.JoinInts(rep.Sequence))
	fmt.Fprintf(w, "Primes:    %s\n", template.JoinInts(rep.Primes))
	fmt.Fprintf(w, "Count:     %d\n", rep.PrimeCount)
}
