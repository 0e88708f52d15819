package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/fibprime/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindParse:
			return "Invalid input. Please enter an integer."

		case domain.KindInvalidArgument:
			if strings.HasPrefix(oe.Op, "plot.") {
				return "Window too small for the chart"
			}
			return "Please enter a non-negative integer"

		case domain.KindOutOfRange:
			return "Bound too large for 64-bit terms"

		case domain.KindNotFound:
			return "Config not found"

		case domain.KindInvalidConfig:
			if strings.HasPrefix(oe.Op, "template.") {
				return "Invalid output.summary template"
			}
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"
		}
	}

	switch {
	case errors.Is(err, domain.ErrParse):
		return "Invalid input. Please enter an integer."
	case errors.Is(err, domain.ErrOutOfRange):
		return "Bound too large for 64-bit terms"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Please enter a non-negative integer"
	}

	return "Unexpected error (see logs)"
}
