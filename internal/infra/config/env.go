package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvMode     = "FIBPRIME_MODE"
	EnvBound    = "FIBPRIME_BOUND"
	EnvFormat   = "FIBPRIME_FORMAT"
	EnvDebug    = "FIBPRIME_DEBUG"
	EnvPlotKind = "FIBPRIME_PLOT_KIND"
)

// readDotenv parses a dotenv file without exporting it into the process.
// A missing file yields an empty map.
func readDotenv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "config.read_dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return vals, nil
}

// ApplyEnv overlays FIBPRIME_* variables on cfg and validates the result.
func ApplyEnv(cfg domain.Config, lookup func(string) (string, bool)) (domain.Config, error) {
	out := cfg

	if v, ok := lookupTrimmed(lookup, EnvMode); ok {
		mode, err := domain.ParseMode(v)
		if err != nil {
			return cfg, invalidEnv(EnvMode, err)
		}
		out.Defaults.Mode = mode
	}
	if v, ok := lookupTrimmed(lookup, EnvBound); ok {
		n, err := domain.ParseBound(v)
		if err != nil {
			return cfg, invalidEnv(EnvBound, err)
		}
		out.Defaults.Bound = n
	}
	if v, ok := lookupTrimmed(lookup, EnvFormat); ok {
		out.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, invalidEnv(EnvDebug, err)
		}
		out.Logging.Debug = b
	}
	if v, ok := lookupTrimmed(lookup, EnvPlotKind); ok {
		out.Plot.Kind = strings.ToLower(v)
	}

	if err := Validate("env", out); err != nil {
		return cfg, err
	}
	return out, nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func invalidEnv(key string, err error) error {
	return &domain.OpError{
		Op:   "config.env",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %v: %w", key, err, domain.ErrInvalidConfig),
	}
}
