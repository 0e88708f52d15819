package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/fibprime/internal/app/plot"
	"github.com/aalvaropc/fibprime/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenPrompt
	screenResult
	screenAnimate
)

type action int

const (
	actionSequence action = iota
	actionPrimes
	actionLine
	actionSpiral
	actionAnimate
	actionQuit
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	input textinput.Model

	act  action
	mode domain.Mode

	running bool
	toast   string
	report  domain.Report

	anim    player
	animID  int
	oneShot bool
	width   int
	height  int
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Sequence", "Fibonacci terms up to a bound", actionSequence},
		menuItem{"Primes", "Prime terms and where they sit", actionPrimes},
		menuItem{"Line chart", "Term value against index", actionLine},
		menuItem{"Spiral chart", "Polar plot, angle = index, radius = √value", actionSpiral},
		menuItem{"Animate spiral", "Draw the spiral one term at a time", actionAnimate},
		menuItem{"Quit", "Exit fibprime", actionQuit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "fibprime"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	in := textinput.New()
	in.CharLimit = 20
	in.Width = 24

	mode := deps.Config.Defaults.Mode
	if !mode.Valid() {
		mode = domain.ModeTerms
	}

	return model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		input: in,
		mode:  mode,
	}
}

func (m model) Init() tea.Cmd {
	if m.scr == screenAnimate {
		return cmdTick(m.animID, m.anim.interval)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case analysisDoneMsg:
		return m.onAnalysis(msg)

	case tickMsg:
		if m.scr != screenAnimate || msg.id != m.animID {
			return m, nil
		}
		if m.anim.advance() {
			return m, cmdTick(m.animID, m.anim.interval)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		default:
			return m.updateViewer(msg)
		}
	}

	if m.scr == screenPrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if it.act == actionQuit {
			return m, tea.Quit
		}
		return m.openPrompt(it.act)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) openPrompt(act action) (model, tea.Cmd) {
	m.act = act
	m.scr = screenPrompt
	m.toast = ""
	m.input.Placeholder = m.placeholder()
	m.input.SetValue(strconv.FormatInt(m.deps.Config.Defaults.Bound, 10))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.home(), nil
	case "tab":
		if m.mode == domain.ModeTerms {
			m.mode = domain.ModeMax
		} else {
			m.mode = domain.ModeTerms
		}
		m.input.Placeholder = m.placeholder()
		return m, nil
	case "enter":
		if m.running {
			return m, nil
		}
		bound, err := domain.ParseBound(m.input.Value())
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.toast = ""
		m.running = true
		return m, cmdAnalyze(m.deps, domain.Request{Bound: bound, Mode: m.mode})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "b":
		if m.oneShot {
			return m, tea.Quit
		}
		return m.home(), nil
	case "r", " ":
		if m.scr == screenAnimate {
			m.anim.frame = 0
			m.animID++
			return m, cmdTick(m.animID, m.anim.interval)
		}
	}
	return m, nil
}

func (m model) onAnalysis(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	if m.scr != screenPrompt {
		return m, nil
	}
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		return m, nil
	}

	m.report = msg.report
	m.input.Blur()

	if m.act == actionAnimate {
		w, h := chartSize(m.deps.Config, m.width, m.height)
		m.anim = newPlayer(msg.report, plot.KindSpiral, w, h, m.deps.Config.Animation.Interval(), plot.WithPrimeStyle(m.theme.Prime))
		m.animID++
		m.scr = screenAnimate
		return m, cmdTick(m.animID, m.anim.interval)
	}

	m.scr = screenResult
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.toast = ""
	m.running = false
	m.animID++
	m.input.Blur()
	return m
}

func (m model) placeholder() string {
	if m.mode == domain.ModeMax {
		return "largest value to include"
	}
	return "number of terms"
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("fibprime") + "\n" +
		m.theme.Subtitle.Render("Fibonacci sequences, their primes and terminal charts") + "\n"

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		if m.toast != "" {
			help = m.theme.Toast.Render(m.toast) + "\n" + help
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenPrompt:
		body := fmt.Sprintf("%s\n\nMode: %s\n\n%s",
			m.theme.Title.Render(m.title()),
			m.mode,
			m.input.View(),
		)
		if m.running {
			body += "\n\n" + m.theme.Subtitle.Render("computing…")
		}
		if m.toast != "" {
			body += "\n\n" + m.theme.Toast.Render(m.toast)
		}
		help := m.theme.Help.Render("enter run • tab switch mode • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenResult:
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.theme.Title.Render(m.title())+"\n\n"+m.resultBody()) + "\n" + help)

	case screenAnimate:
		status := fmt.Sprintf("%d/%d terms", m.anim.frame, m.anim.total())
		help := m.theme.Help.Render("r restart • esc/b back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.theme.Title.Render(m.title())+"\n\n"+m.anim.view()+"\n\n"+status) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) title() string {
	switch m.act {
	case actionPrimes:
		return "Primes"
	case actionLine:
		return "Line chart"
	case actionSpiral:
		return "Spiral chart"
	case actionAnimate:
		return "Animated " + string(m.anim.kind) + " chart"
	default:
		return "Sequence"
	}
}

func (m model) resultBody() string {
	width := 100
	if m.width > 0 {
		width = m.width - 10
	}

	switch m.act {
	case actionPrimes:
		return renderPrimes(m.report, m.theme, width)
	case actionLine, actionSpiral:
		kind := plot.KindLine
		if m.act == actionSpiral {
			kind = plot.KindSpiral
		}
		w, h := chartSize(m.deps.Config, m.width, m.height)
		chart, err := plot.Render(kind, m.report, w, h, plot.WithPrimeStyle(m.theme.Prime))
		if err != nil {
			return m.theme.Toast.Render(userMessage(err))
		}
		return strings.TrimRight(chart, "\n") + "\n\n" +
			m.theme.Help.Render(fmt.Sprintf("%c term • %c prime", plot.GlyphTerm, plot.GlyphPrime))
	default:
		return renderSequence(m.report, m.deps.Config.Output.Summary, m.theme, width)
	}
}
