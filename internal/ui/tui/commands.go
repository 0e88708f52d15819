package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/fibprime/internal/domain"
)

func cmdAnalyze(deps Deps, req domain.Request) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if deps.Analyze == nil {
			return analysisDoneMsg{req: req, err: errors.New("Analyze is nil")}
		}

		log.Info("analyze.start",
			"bound", req.Bound,
			"mode", string(req.Mode),
			"source", "tui",
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		rep, err := deps.Analyze.Execute(ctx, req)
		if err != nil {
			log.Error("analyze.failed", "request", req.String(), "err", err)
			return analysisDoneMsg{req: req, err: err}
		}

		log.Info("analyze.ok", "terms", rep.Terms(), "prime_count", rep.PrimeCount)
		if deps.Debug {
			log.Debug("analyze.primes", "primes", rep.Primes)
		}
		return analysisDoneMsg{req: req, report: rep}
	}
}

func cmdTick(id int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
