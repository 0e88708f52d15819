package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fibprime/internal/app/template"
	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/infra/logger"
)

func promptCmd(a *app) *cobra.Command {
	var mode string
	var once bool

	c := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a bound interactively and print the sequence and its prime count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := a.settings.cfg.Defaults.Mode
			if strings.TrimSpace(mode) != "" {
				parsed, err := domain.ParseMode(mode)
				if err != nil {
					return err
				}
				m = parsed
			}

			p := prompter{
				in:      cmd.InOrStdin(),
				out:     cmd.OutOrStdout(),
				mode:    m,
				summary: a.settings.cfg.Output.Summary,
				once:    once,
			}
			return p.loop(cmd)
		},
	}

	c.Flags().StringVarP(&mode, "mode", "m", "", "Stopping rule: terms|max (defaults to config)")
	c.Flags().BoolVar(&once, "once", false, "Exit after the first valid answer")
	return c
}

type prompter struct {
	in      io.Reader
	out     io.Writer
	mode    domain.Mode
	summary string
	once    bool
}

func (p prompter) question() string {
	if p.mode == domain.ModeMax {
		return "Enter the largest Fibonacci value to include (q to quit): "
	}
	return "Enter the number of Fibonacci terms (q to quit): "
}

// loop re-prompts on bad input and ends on "q", EOF or, with once, the first result.
func (p prompter) loop(cmd *cobra.Command) error {
	sc := bufio.NewScanner(p.in)
	log := logger.L()

	for {
		fmt.Fprint(p.out, p.question())
		if !sc.Scan() {
			fmt.Fprintln(p.out)
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
			return nil
		}

		bound, err := domain.ParseBound(line)
		if err != nil {
			log.Debug("prompt.rejected", "input", line, "err", err)
			fmt.Fprintln(p.out, rejection(err))
			continue
		}

		rep, err := analyze(cmd.Context(), log, domain.Request{Bound: bound, Mode: p.mode})
		if err != nil {
			fmt.Fprintln(p.out, rejection(err))
			continue
		}

		out, err := template.Summary(p.summary, rep)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, out)

		if p.once {
			return nil
		}
	}
}

func rejection(err error) string {
	switch {
	case domain.IsKind(err, domain.KindParse):
		return "Invalid input. Please enter an integer."
	case domain.IsKind(err, domain.KindInvalidArgument):
		return "Please enter a non-negative integer."
	case domain.IsKind(err, domain.KindOutOfRange):
		return "That bound is too large for 64-bit Fibonacci terms."
	default:
		return "Error: " + err.Error()
	}
}
