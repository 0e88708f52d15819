package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
)

var (
	formats   = []string{"pretty", "json", "text"}
	plotKinds = []string{"line", "spiral", "primes"}
)

// MapConfig applies parsed YAML values on top of base and validates the result.
func MapConfig(path string, base domain.Config, y YAMLConfig) (domain.Config, error) {
	cfg := base

	if strings.TrimSpace(y.Defaults.Mode) != "" {
		mode, err := domain.ParseMode(y.Defaults.Mode)
		if err != nil {
			return base, invalidField(path, "defaults.mode", err.Error())
		}
		cfg.Defaults.Mode = mode
	}
	if y.Defaults.Bound != nil {
		cfg.Defaults.Bound = *y.Defaults.Bound
	}

	if f := strings.TrimSpace(y.Output.Format); f != "" {
		cfg.Output.Format = strings.ToLower(f)
	}
	if y.Output.Summary != "" {
		cfg.Output.Summary = y.Output.Summary
	}

	if k := strings.TrimSpace(y.Plot.Kind); k != "" {
		cfg.Plot.Kind = strings.ToLower(k)
	}
	if y.Plot.Width != nil {
		cfg.Plot.Width = *y.Plot.Width
	}
	if y.Plot.Height != nil {
		cfg.Plot.Height = *y.Plot.Height
	}

	if y.Animation.IntervalMS != nil {
		cfg.Animation.IntervalMS = *y.Animation.IntervalMS
	}

	if y.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Logging.Debug
	}
	if d := strings.TrimSpace(y.Logging.Dir); d != "" {
		cfg.Logging.Dir = d
	}

	if err := Validate(path, cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks the invariants the CLI and TUI rely on.
func Validate(path string, cfg domain.Config) error {
	if !cfg.Defaults.Mode.Valid() {
		return invalidField(path, "defaults.mode", fmt.Sprintf("unsupported mode %q", cfg.Defaults.Mode))
	}
	if cfg.Defaults.Bound < 0 {
		return invalidField(path, "defaults.bound", "bound must be non-negative")
	}
	if !slices.Contains(formats, cfg.Output.Format) {
		return invalidField(path, "output.format", fmt.Sprintf("unsupported format %q (expected %s)", cfg.Output.Format, strings.Join(formats, "|")))
	}
	if !slices.Contains(plotKinds, cfg.Plot.Kind) {
		return invalidField(path, "plot.kind", fmt.Sprintf("unsupported kind %q (expected %s)", cfg.Plot.Kind, strings.Join(plotKinds, "|")))
	}
	if cfg.Plot.Width < 2 {
		return invalidField(path, "plot.width", "width must be at least 2")
	}
	if cfg.Plot.Height < 2 {
		return invalidField(path, "plot.height", "height must be at least 2")
	}
	if cfg.Animation.IntervalMS <= 0 {
		return invalidField(path, "animation.interval_ms", "interval must be positive")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
