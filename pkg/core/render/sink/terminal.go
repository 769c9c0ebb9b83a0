package sink

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
)

// blocks holds the lower eighth-block glyphs; blocks[n] fills n/8 of a cell.
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// The grid is cropped to this many cells; larger surfaces lose their
// right and bottom edges.
const (
	maxTermCols = 2048
	maxTermRows = 1024
)

// TermOption configures terminal rendering.
type TermOption func(*termRenderer)

type termRenderer struct {
	renderer *lipgloss.Renderer
	plain    bool
}

// WithRenderer sets the lipgloss renderer used for color output, for
// example one bound to an SSH session. The default renderer targets stdout.
func WithRenderer(r *lipgloss.Renderer) TermOption {
	return func(t *termRenderer) { t.renderer = r }
}

// WithPlain disables color, leaving only glyphs.
func WithPlain() TermOption { return func(t *termRenderer) { t.plain = true } }

type cell struct {
	r     rune
	color styles.Color
	set   bool
}

// RenderTerminal rasterizes the state onto character cells and returns the
// rows joined by newlines. See [metrics.CellWidth] and [metrics.CellHeight].
func RenderTerminal(s month.State, opts ...TermOption) string {
	t := termRenderer{renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&t)
	}

	w, h := s.Width(), s.Height()
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return ""
	}
	cols := int(math.Min(math.Ceil(w/metrics.CellWidth), maxTermCols))
	rows := int(math.Min(math.Ceil(h/metrics.CellHeight), maxTermRows))
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
	}

	rasterizeBars(grid, s)
	rasterizeLabels(grid, s)

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = t.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func rasterizeBars(grid [][]cell, s month.State) {
	rows, cols := len(grid), len(grid[0])
	half := s.StrokeWidth() / 2

	for _, seg := range s.Segments() {
		if !seg.Visible {
			continue
		}
		c0 := clamp(int(math.Floor((seg.X-half)/metrics.CellWidth)), 0, cols-1)
		c1 := clamp(int(math.Ceil((seg.X+half)/metrics.CellWidth))-1, c0, cols-1)

		drawn := false
		for r := 0; r < rows; r++ {
			top := float64(r) * metrics.CellHeight
			bottom := top + metrics.CellHeight
			cover := (math.Min(seg.Baseline, bottom) - math.Max(seg.Top, top)) / metrics.CellHeight
			n := int(math.Round(cover * 8))
			if n <= 0 {
				continue
			}
			fill(grid[r][c0:c1+1], blocks[min(n, 8)], seg.Color)
			drawn = true
		}
		if !drawn {
			r := clamp(int(math.Ceil(seg.Baseline/metrics.CellHeight))-1, 0, rows-1)
			fill(grid[r][c0:c1+1], blocks[1], seg.Color)
		}
	}
}

func rasterizeLabels(grid [][]cell, s month.State) {
	rows, cols := len(grid), len(grid[0])
	r := clamp(int(math.Floor(s.LabelY/metrics.CellHeight)), 0, rows-1)

	for _, l := range s.VisibleLabels() {
		c := int(math.Floor(l.X / metrics.CellWidth))
		text := []rune(l.Text)
		if c < 0 || c+len(text) > cols || occupied(grid[r][c:c+len(text)]) {
			continue
		}
		for i, ch := range text {
			grid[r][c+i] = cell{r: ch, color: s.Palette.Label, set: true}
		}
	}
}

func (t termRenderer) renderRow(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].set == row[i].set && row[j].color == row[i].color {
			if row[j].set {
				run.WriteRune(row[j].r)
			} else {
				run.WriteByte(' ')
			}
			j++
		}
		if t.plain || !row[i].set {
			b.WriteString(run.String())
		} else {
			b.WriteString(t.style(row[i].color).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

func (t termRenderer) style(c styles.Color) lipgloss.Style {
	st := t.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	if !c.Opaque() {
		st = st.Faint(true)
	}
	return st
}

func fill(cells []cell, r rune, c styles.Color) {
	for i := range cells {
		cells[i] = cell{r: r, color: c, set: true}
	}
}

func occupied(cells []cell) bool {
	for _, c := range cells {
		if c.set {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
