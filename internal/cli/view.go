package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/sink"
	"github.com/matzehuels/monthgraph/pkg/pipeline"
)

// footerRows is the number of rows below the chart (stats and help).
const footerRows = 2

// dayCheckInterval is how often the view checks whether the date rolled over.
const dayCheckInterval = time.Minute

// viewCommand creates the view command.
func (c *CLI) viewCommand() *cobra.Command {
	var sf seriesFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Draw a month of values live in the terminal",
		Long: `Draw a month of values live in the terminal.

The chart fills the terminal and is laid out again whenever the window
is resized. Past, today and future bars keep their colors as the date
changes while the view is open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, _, err := readSeries(cmd, args)
			if err != nil {
				return err
			}
			opts := c.options(sf, series)
			opts.Metrics = c.terminalMetrics()
			opts.Formats = []string{pipeline.FormatTerm}
			m, err := newViewModel(opts)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}

	sf.register(cmd)
	return cmd
}

// =============================================================================
// Key bindings
// =============================================================================

type viewKeyMap struct {
	Labels key.Binding
	Quit   key.Binding
}

func (k viewKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Labels, k.Quit} }

func (k viewKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var viewKeys = viewKeyMap{
	Labels: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "toggle labels"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// =============================================================================
// Model
// =============================================================================

type dayCheckMsg time.Time

// viewModel is the bubbletea model behind `monthgraph view`. It owns the
// month graph; Update is the only place that mutates it.
type viewModel struct {
	graph *month.Graph
	state month.State
	clock calendar.Clock
	day   calendar.Date
	keys  viewKeyMap
	help  help.Model
	cols  int
	rows  int
}

// newViewModel lays out opts for the terminal the view starts in.
func newViewModel(opts pipeline.Options) (viewModel, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return viewModel{}, err
	}
	g, err := pipeline.NewGraph(opts)
	if err != nil {
		return viewModel{}, err
	}
	m := viewModel{
		graph: g,
		state: g.Configure(opts.Values),
		clock: opts.Clock,
		day:   calendar.DateOf(opts.Clock.Now()),
		keys:  viewKeys,
		help:  help.New(),
	}
	return m, nil
}

func (m viewModel) Init() tea.Cmd {
	return checkDay()
}

func checkDay() tea.Cmd {
	return tea.Tick(dayCheckInterval, func(t time.Time) tea.Msg { return dayCheckMsg(t) })
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.help.Width = msg.Width
		chartRows := max(1, msg.Height-footerRows)
		m.state = m.graph.Resize(float64(msg.Width*metrics.CellWidth), float64(chartRows*metrics.CellHeight))
		return m, nil

	case dayCheckMsg:
		today := calendar.DateOf(m.clock.Now())
		if today != m.day && m.state.Start != nil {
			m.day = today
			m.state = m.graph.SetStartDate(*m.state.Start)
		}
		return m, checkDay()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Labels):
			m.state = m.graph.SetLabelsEnabled(!m.state.LabelsEnabled)
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	if m.cols == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sink.RenderTerminal(m.state))
	b.WriteString("\n")
	b.WriteString(statsLine(seriesStats{
		days:  len(m.state.Layout.Values),
		max:   m.state.Layout.Max,
		total: total(m.state.Layout.Values),
		today: m.state.TodayIndex,
	}))
	if m.state.Start != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · from %s", m.state.Start)))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
