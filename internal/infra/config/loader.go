package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/ports"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName    = "fibprime.yaml"
	DefaultEnvFileName = ".env"
)

type Loader struct {
	required  bool
	lookupEnv func(string) (string, bool)
}

type Option func(*Loader)

// WithRequired makes a missing fibprime.yaml an error instead of falling back to defaults.
func WithRequired(required bool) Option {
	return func(l *Loader) { l.required = required }
}

// WithLookupEnv is useful for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookupEnv = fn }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig resolves configuration for root.
// Precedence: defaults < fibprime.yaml < root/.env < process environment.
func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, DefaultFileName)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		var y YAMLFile
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg, err = MapConfig(path, cfg, y.Fibprime)
		if err != nil {
			return domain.DefaultConfig(), err
		}
	case errors.Is(err, fs.ErrNotExist):
		if l.required {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  err,
			}
		}
		// Defaults only.
	default:
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	dotenv, err := readDotenv(filepath.Join(root, DefaultEnvFileName))
	if err != nil {
		return cfg, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	return ApplyEnv(cfg, lookup)
}
