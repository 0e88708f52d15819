package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/infra/config"
	"github.com/aalvaropc/fibprime/internal/infra/configfinder"
	"github.com/aalvaropc/fibprime/internal/infra/logger"
)

// app carries state shared by every command of one invocation.
type app struct {
	debugFlag bool
	configDir string

	settings *settings
	cleanup  func() error
}

type settings struct {
	root string
	cfg  domain.Config
}

// open loads settings and installs the file logger. With debug on, the log
// path is reported on errOut.
func (a *app) open(errOut io.Writer) error {
	st, err := loadSettings(a.configDir)
	if err != nil {
		return err
	}
	a.settings = st

	// A failed Setup leaves the discard logger installed.
	cleanup, _ := logger.Setup(logger.Config{
		Root:  st.root,
		Dir:   st.cfg.Logging.Dir,
		Debug: a.debug(),
	})
	a.cleanup = cleanup

	if a.debug() && logger.IsReady() == nil {
		fmt.Fprintf(errOut, "debug log: %s\n", logger.Path())
	}
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) debug() bool {
	if a.debugFlag {
		return true
	}
	return a.settings != nil && a.settings.cfg.Logging.Debug
}

func loadSettings(configDir string) (*settings, error) {
	dir := strings.TrimSpace(configDir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := config.NewLoader(config.WithRequired(true)).LoadConfig(abs)
		if err != nil {
			return nil, err
		}
		return &settings{root: abs, cfg: cfg}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := configfinder.NewFinder().RootOrStart(wd)
	cfg, err := config.NewLoader().LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return &settings{root: root, cfg: cfg}, nil
}

// request builds the analysis input: flags win over configured defaults.
func (st *settings) request(cmd *cobra.Command, bound int64, mode string) (domain.Request, error) {
	req := domain.Request{
		Bound: st.cfg.Defaults.Bound,
		Mode:  st.cfg.Defaults.Mode,
	}
	if cmd.Flags().Changed("bound") {
		req.Bound = bound
	}
	if strings.TrimSpace(mode) != "" {
		m, err := domain.ParseMode(mode)
		if err != nil {
			return domain.Request{}, err
		}
		req.Mode = m
	}
	return req, nil
}

func addRequestFlags(c *cobra.Command, bound *int64, mode *string) {
	c.Flags().Int64VarP(bound, "bound", "n", 0, "Term count (mode terms) or value ceiling (mode max); defaults to config")
	c.Flags().StringVarP(mode, "mode", "m", "", "Stopping rule: terms|max (defaults to config)")
}
