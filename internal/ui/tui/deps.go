package tui

import (
	"log/slog"

	"github.com/aalvaropc/fibprime/internal/domain"
	"github.com/aalvaropc/fibprime/internal/usecase"
)

type Deps struct {
	Analyze *usecase.Analyze
	Config  domain.Config

	Logger *slog.Logger
	Debug  bool
}
