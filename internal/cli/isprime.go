package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/infra/logger"
	"github.com/aalvaropc/fibprime/internal/usecase/primes"
)

// negMark keeps "-7" away from pflag's shorthand parsing.
const negMark = "\x00"

func isPrimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isprime N [N...]",
		Short: "Test integers for primality by trial division",
		Long:  "Test integers for primality by trial division. Negative integers are accepted and are never prime.",
		// Flags are parsed in RunE so that signed integers stay positional.
		DisableFlagParsing: true,
		PersistentPreRunE:  func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fs.AddFlagSet(cmd.LocalFlags())
			fs.AddFlagSet(cmd.InheritedFlags())

			if err := fs.Parse(shieldSigned(args)); err != nil {
				if errors.Is(err, pflag.ErrHelp) {
					return cmd.Help()
				}
				return err
			}
			if help, _ := fs.GetBool("help"); help {
				return cmd.Help()
			}

			rest := unshieldSigned(fs.Args())
			if err := cobra.MinimumNArgs(1)(cmd, rest); err != nil {
				return err
			}

			nums := make([]int64, 0, len(rest))
			for _, arg := range rest {
				n, err := domain.ParseInteger(arg)
				if err != nil {
					return fmt.Errorf("argument %q: %w", arg, err)
				}
				nums = append(nums, n)
			}

			if err := a.open(cmd.ErrOrStderr()); err != nil {
				return err
			}
			log := logger.L()

			w := cmd.OutOrStdout()
			for _, n := range nums {
				prime := primes.IsPrime(n)
				log.Debug("isprime.checked", "n", n, "prime", prime)

				verdict := "not prime"
				if prime {
					verdict = "prime"
				}
				fmt.Fprintf(w, "%d: %s\n", n, verdict)
			}
			return nil
		},
	}
}

// shieldSigned marks arguments such as "-7" so pflag reads them as positionals.
func shieldSigned(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			arg = negMark + arg
		}
		out[i] = arg
	}
	return out
}

func unshieldSigned(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.TrimPrefix(arg, negMark)
	}
	return out
}
