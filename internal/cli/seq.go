package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/infra/logger"
	"github.com/aalvaropc/fibprime/internal/usecase"
)

func seqCmd(a *app) *cobra.Command {
	var bound int64
	var mode string
	var format string
	var query string

	c := &cobra.Command{
		Use:     "seq",
		Aliases: []string{"run"},
		Short:   "Generate a Fibonacci sequence and list its primes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := a.settings.request(cmd, bound, mode)
			if err != nil {
				return err
			}

			rep, err := analyze(cmd.Context(), logger.L(), req)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.settings.cfg.Output.Format
			}
			return printReport(cmd.OutOrStdout(), rep, reportOptions{
				format:  format,
				summary: a.settings.cfg.Output.Summary,
				query:   query,
			})
		},
	}

	addRequestFlags(c, &bound, &mode)
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|text (defaults to config)")
	c.Flags().StringVar(&query, "query", "", "JSONPath applied to the JSON report, e.g. $.primes (json format only)")
	return c
}

func analyze(ctx context.Context, log *slog.Logger, req domain.Request) (domain.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log.Info("analyze.start", "bound", req.Bound, "mode", string(req.Mode))

	rep, err := usecase.NewAnalyze().Execute(ctx, req)
	if err != nil {
		log.Error("analyze.failed", "request", req.String(), "err", err)
		return domain.Report{}, err
	}

	log.Info("analyze.ok", "terms", rep.Terms(), "prime_count", rep.PrimeCount)
	log.Debug("analyze.primes", "primes", rep.Primes)
	return rep, nil
}
