package plot

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/fibprime/internal/domain"
)

// Canvas is a fixed-size chart area without axes; y grows upward.
type Canvas struct {
	width, height int
	chart         linechart.Model
	termStyle     lipgloss.Style
	primeStyle    lipgloss.Style
}

type CanvasOption func(*Canvas)

// WithPrimeStyle styles prime glyphs, e.g. with a TUI theme color.
func WithPrimeStyle(s lipgloss.Style) CanvasOption {
	return func(c *Canvas) { c.primeStyle = s }
}

func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width < 2 || height < 2 {
		return nil, domain.InvalidArgument("plot.canvas", "canvas must be at least 2x2, got %dx%d", width, height)
	}
	c := &Canvas{
		width:      width,
		height:     height,
		termStyle:  lipgloss.NewStyle(),
		primeStyle: lipgloss.NewStyle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.chart = newChart(width, height, 0, 1, 0, 1)
	return c, nil
}

func newChart(w, h int, minX, maxX, minY, maxY float64) linechart.Model {
	return linechart.New(w, h, minX, maxX, minY, maxY, linechart.WithXYSteps(0, 0))
}

// Plot redraws the canvas with points scaled to their bounding box. Primes are
// drawn last so they win a shared cell. A degenerate range lands on the
// bottom or left edge.
func (c *Canvas) Plot(points []Point) {
	if len(points) == 0 {
		c.chart = newChart(c.width, c.height, 0, 1, 0, 1)
		return
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	c.chart = newChart(c.width, c.height, minX, maxX, minY, maxY)
	for _, primePass := range []bool{false, true} {
		for _, p := range points {
			if p.Prime != primePass {
				continue
			}
			glyph, style := GlyphTerm, c.termStyle
			if p.Prime {
				glyph, style = GlyphPrime, c.primeStyle
			}
			c.chart.DrawRuneWithStyle(canvas.Float64Point{X: p.X, Y: p.Y}, glyph, style)
		}
	}
}

// String renders the canvas rows with trailing blanks trimmed.
func (c *Canvas) String() string {
	lines := strings.Split(c.chart.View(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
