package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fibprime/internal/app/plot"
	"github.com/aalvaropc/fibprime/internal/infra/logger"
	"github.com/aalvaropc/fibprime/internal/ui/tui"
)

func plotCmd(a *app) *cobra.Command {
	var bound int64
	var mode string
	var kind string
	var width int
	var height int
	var animate bool

	c := &cobra.Command{
		Use:   "plot",
		Short: "Draw the sequence as a terminal chart (line, spiral or prime markers)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.settings.cfg

			req, err := a.settings.request(cmd, bound, mode)
			if err != nil {
				return err
			}

			if kind == "" {
				kind = cfg.Plot.Kind
			}
			k, err := plot.ParseKind(kind)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Plot.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Plot.Height
			}

			rep, err := analyze(cmd.Context(), logger.L(), req)
			if err != nil {
				return err
			}

			if animate {
				return tui.RunAnimation(tui.AnimationSpec{
					Report:   rep,
					Kind:     k,
					Width:    width,
					Height:   height,
					Interval: cfg.Animation.Interval(),
				}, logger.L())
			}

			chart, err := plot.Render(k, rep, width, height)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s chart, %d terms (%c = prime)\n", k, rep.Terms(), plot.GlyphPrime)
			fmt.Fprintln(w, chart)
			return nil
		},
	}

	addRequestFlags(c, &bound, &mode)
	c.Flags().StringVarP(&kind, "kind", "k", "", "Chart: line|spiral|primes (defaults to config)")
	c.Flags().IntVar(&width, "width", 0, "Canvas width in cells (defaults to config)")
	c.Flags().IntVar(&height, "height", 0, "Canvas height in cells (defaults to config)")
	c.Flags().BoolVar(&animate, "animate", false, "Animate the chart term by term in the terminal")
	return c
}
