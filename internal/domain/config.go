package domain

import "time"

// Config represents the fibprime configuration loaded from fibprime.yaml.
type Config struct {
	Defaults  DefaultsConfig
	Output    OutputConfig
	Plot      PlotConfig
	Animation AnimationConfig
	Logging   LoggingConfig
}

type DefaultsConfig struct {
	Mode  Mode
	Bound int64
}

type OutputConfig struct {
	Format string
	// Summary is the template used by the "text" format.
	Summary string
}

type PlotConfig struct {
	Kind   string
	Width  int
	Height int
}

type AnimationConfig struct {
	IntervalMS int
}

// Interval is the delay between animation frames; non-positive values fall back to 120ms.
func (a AnimationConfig) Interval() time.Duration {
	if a.IntervalMS <= 0 {
		return 120 * time.Millisecond
	}
	return time.Duration(a.IntervalMS) * time.Millisecond
}

type LoggingConfig struct {
	Debug bool
	Dir   string
}

// DefaultSummary mirrors the two lines printed by the classic interactive script.
const DefaultSummary = "Fibonacci sequence up to {{bound}} {{unit}}: {{sequence}}\nNumber of prime numbers in the sequence: {{count}}"

// DefaultConfig provides sane defaults if fibprime.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Mode:  ModeTerms,
			Bound: 10,
		},
		Output: OutputConfig{
			Format:  "pretty",
			Summary: DefaultSummary,
		},
		Plot: PlotConfig{
			Kind:   "line",
			Width:  60,
			Height: 18,
		},
		Animation: AnimationConfig{
			IntervalMS: 120,
		},
		Logging: LoggingConfig{
			Dir: ".fibprime/logs",
		},
	}
}

// InitSpec describes where `fibprime init` scaffolds a config file.
type InitSpec struct {
	Root string
}
