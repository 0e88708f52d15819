package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/ports"
)

// Finder locates the directory holding fibprime.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "fibprime.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "fibprime.yaml"}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if info, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// RootOrStart returns the config root above startDir, or startDir itself when
// no fibprime.yaml exists on the way up.
func (f *Finder) RootOrStart(startDir string) string {
	if root, err := f.FindRoot(startDir); err == nil {
		return root
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		return abs
	}
	return startDir
}
