package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/fibprime/internal/app/plot"
	"github.com/aalvaropc/fibprime/internal/domain"
)

// player draws a chart one term per frame.
type player struct {
	report   domain.Report
	kind     plot.Kind
	width    int
	height   int
	interval time.Duration
	frame    int
	opts     []plot.CanvasOption
}

func newPlayer(rep domain.Report, kind plot.Kind, width, height int, interval time.Duration, opts ...plot.CanvasOption) player {
	return player{
		report:   rep,
		kind:     kind,
		width:    width,
		height:   height,
		interval: interval,
		opts:     opts,
	}
}

func (p player) total() int { return p.report.Terms() }

func (p player) done() bool { return p.frame >= p.total() }

// advance shows one more term and reports whether another tick is needed.
func (p *player) advance() bool {
	if p.done() {
		return false
	}
	p.frame++
	return !p.done()
}

func (p player) view() string {
	out, err := plot.Render(p.kind, plot.Prefix(p.report, p.frame), p.width, p.height, p.opts...)
	if err != nil {
		return userMessage(err)
	}
	return out
}

// AnimationSpec describes a standalone animation started outside the menu.
type AnimationSpec struct {
	Report   domain.Report
	Kind     plot.Kind
	Width    int
	Height   int
	Interval time.Duration
}

func RunAnimation(spec AnimationSpec, log *slog.Logger) error {
	p := tea.NewProgram(wrapSafe(newAnimationModel(spec, log), log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAnimationModel(spec AnimationSpec, log *slog.Logger) model {
	cfg := domain.DefaultConfig()
	cfg.Plot.Width = spec.Width
	cfg.Plot.Height = spec.Height

	m := newModel(Deps{Config: cfg, Logger: log})
	m.act = actionAnimate
	m.report = spec.Report
	m.anim = newPlayer(spec.Report, spec.Kind, spec.Width, spec.Height, spec.Interval, plot.WithPrimeStyle(m.theme.Prime))
	m.animID = 1
	m.scr = screenAnimate
	m.oneShot = true
	return m
}
