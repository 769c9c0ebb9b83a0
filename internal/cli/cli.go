// Package cli implements the monthgraph command-line interface.
//
// The commands read a month of daily values, lay them out as bars and
// write the result as SVG, PNG, PDF, JSON or terminal output. The same
// pipeline backs the HTTP API started by `monthgraph serve`.
//
// # Commands
//
//   - render: lay out a series and write one or more output formats
//   - layout: write the computed layout as a JSON document
//   - view: draw the series live in the terminal, following resizes
//   - serve: run the HTTP render API
//   - cache: inspect or clear the artifact cache
//
// # Configuration
//
// Defaults come from a TOML file (see package config), selected with
// --config or found at the platform config directory. Flags override it.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the pipeline and cache event hooks.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/buildinfo"
	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/config"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	pkgio "github.com/matzehuels/monthgraph/pkg/io"
	"github.com/matzehuels/monthgraph/pkg/observability"
	"github.com/matzehuels/monthgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "monthgraph"

	// defaultTermCols is the width assumed when stdout is not a terminal.
	defaultTermCols = 80

	// defaultTermRows is the chart height in rows for terminal output.
	defaultTermRows = 8
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the configuration loaded for the running command.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Monthgraph draws a month of daily values as bars",
		Long: `Monthgraph lays out one calendar month of daily values as vertical bars,
colored as past, today and future, with day-of-month labels underneath.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: <config dir>/monthgraph/config.toml if present)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every command: it applies --verbose, loads the config
// file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		observability.NewLogHooks(c.Logger).Register()
	}
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "cache", cfg.Cache.Backend)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.cfg.Keyer(), c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cc, err := c.cfg.OpenCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", c.cfg.Cache.Backend, err)
	}
	return cc, nil
}

// =============================================================================
// Series Flags
// =============================================================================

// seriesFlags are the layout flags shared by render, layout and view.
type seriesFlags struct {
	start    string
	now      string
	width    float64
	height   float64
	padding  string
	noLabels bool
	noCache  bool
}

func (f *seriesFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.start, "start", "", "date of the first value, YYYY-MM-DD (overrides the file)")
	fl.StringVar(&f.now, "now", "", "treat this date as today, YYYY-MM-DD")
	fl.Float64Var(&f.width, "width", 0, "screen width in pixels (default from config)")
	fl.Float64Var(&f.height, "height", 0, "view height in pixels (default from config)")
	fl.StringVar(&f.padding, "padding", "", `horizontal padding dimension id, or "none"`)
	fl.BoolVar(&f.noLabels, "no-labels", false, "hide day labels")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// options merges the series, the config and the flags into pipeline options.
func (c *CLI) options(f seriesFlags, s pkgio.Series) pipeline.Options {
	opts := pipeline.Options{
		Values:      s.Values,
		Start:       s.Start,
		Now:         f.now,
		ScreenWidth: f.width,
		Height:      f.height,
		Padding:     f.padding,
		NoLabels:    f.noLabels || !c.cfg.Graph.Labels,
		Style:       c.cfg.Graph.Style,
		Colors:      c.cfg.Colors,
		Metrics:     c.cfg.Metrics(),
		Logger:      c.Logger,
	}
	if f.start != "" {
		opts.Start = f.start
	}
	if opts.Height == 0 {
		opts.Height = c.cfg.Graph.Height
	}
	if opts.Padding == "" {
		opts.Padding = c.cfg.PaddingID()
	}
	return opts
}

// terminalMetrics measures stdout, keeping the configured dimensions so
// padding ids resolve the same way as for file output.
func (c *CLI) terminalMetrics() *metrics.Terminal {
	t := metrics.NewTerminal(defaultTermCols)
	for k, v := range c.cfg.Dimensions {
		t.Dimensions[k] = v
	}
	return t
}

// readSeries loads the series named by args, or stdin for "-" or no args.
func readSeries(cmd *cobra.Command, args []string) (pkgio.Series, string, error) {
	if len(args) == 0 || args[0] == "-" {
		s, err := pkgio.ReadSeries(cmd.InOrStdin())
		return s, "", err
	}
	s, err := pkgio.ImportSeries(args[0])
	return s, args[0], err
}
