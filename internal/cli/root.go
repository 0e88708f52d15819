package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fibprime/internal/infra/logger"
	"github.com/aalvaropc/fibprime/internal/ui/tui"
	"github.com/aalvaropc/fibprime/internal/usecase"
)

func Execute() {
	a := &app{}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fibprime",
		Short:        "Fibonacci sequences, their primes and terminal charts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.ErrOrStderr())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				Analyze: usecase.NewAnalyze(),
				Config:  a.settings.cfg,
				Logger:  logger.L(),
				Debug:   a.debug(),
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debugFlag, "debug", false, "enable verbose logging to .fibprime/logs/fibprime.log")
	cmd.PersistentFlags().StringVar(&a.configDir, "config", "", "Directory holding fibprime.yaml (optional; searched upward from cwd if omitted)")

	cmd.AddCommand(
		seqCmd(a),
		isPrimeCmd(a),
		plotCmd(a),
		promptCmd(a),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
