package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/pipeline"
)

// renderFlags holds the render-only flags.
type renderFlags struct {
	formats    string
	output     string
	style      string
	background string
	title      string
	scale      float64
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		sf seriesFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a month of values to SVG, PNG, PDF, JSON or the terminal",
		Long: `Render a month of values.

The input is a JSON object {"start_date": "2024-03-01", "values": [...]},
a bare JSON array, or one integer per line. Use "-" or omit the file to
read from stdin.

Outputs are written next to the input as <name>.<format>, to -o when one
format is requested, or to stdout when reading from stdin. The term
format prints to stdout and sizes itself to the terminal unless --width
is given. PNG and PDF need rsvg-convert on PATH.

Rendered artifacts are cached; use --no-cache to skip the cache.`,
		Example: `  monthgraph render march.json
  monthgraph render march.json -f svg,png -o out/march
  seq 1 31 | monthgraph render --start 2024-03-01 -f term`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, sf, rf)
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&rf.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, term (comma-separated)")
	cmd.Flags().StringVarP(&rf.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&rf.style, "style", "", "bar style: rounded, flat (default from config)")
	cmd.Flags().StringVar(&rf.background, "background", "", "background color, #rrggbb or #aarrggbb")
	cmd.Flags().StringVar(&rf.title, "title", "", "SVG title")
	cmd.Flags().Float64Var(&rf.scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	return cmd
}

// runRender reads the series, runs the pipeline and writes every artifact.
func (c *CLI) runRender(cmd *cobra.Command, args []string, sf seriesFlags, rf renderFlags) error {
	ctx := cmd.Context()
	series, input, err := readSeries(cmd, args)
	if err != nil {
		return err
	}

	opts := c.options(sf, series)
	opts.Formats = parseFormats(rf.formats)
	opts.Background = rf.background
	opts.Title = rf.title
	opts.Scale = rf.scale
	if rf.style != "" {
		opts.Style = rf.style
	}
	if slices.Equal(opts.Formats, []string{pipeline.FormatTerm}) && sf.width == 0 {
		opts.Metrics = c.terminalMetrics()
		if sf.height == 0 {
			opts.Height = defaultTermRows * metrics.CellHeight
		}
	}

	runner, err := c.newRunner(ctx, sf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering...")
	spinner.Start()
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("rendered", "formats", opts.Formats, "cached", result.CacheInfo.RenderHit)

	paths, toStdout, err := writeArtifacts(cmd.OutOrStdout(), artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    rf.output,
	})
	if err != nil {
		return err
	}
	if toStdout && len(paths) == 0 {
		return nil
	}

	out := cmd.OutOrStdout()
	if toStdout {
		out = cmd.ErrOrStderr()
	}
	printSuccess(out, "Rendered %s", strings.Join(opts.Formats, ", "))
	for _, p := range paths {
		printFile(out, p)
	}
	printStats(out, seriesStats{
		days:  result.Stats.Days,
		max:   result.Stats.Max,
		total: total(result.State.Layout.Values),
		today: result.State.TodayIndex,
		cache: cacheStatus(result.CacheInfo.RenderHit),
	})
	return nil
}

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // series file, empty for stdin
	output    string // -o flag
}

// writeArtifacts writes each format to its destination. It returns the
// files written and whether anything went to w.
func writeArtifacts(w io.Writer, p artifactWriteParams) ([]string, bool, error) {
	var (
		paths    []string
		toStdout bool
	)
	files := slices.DeleteFunc(slices.Clone(p.formats), func(f string) bool {
		return f == pipeline.FormatTerm && (p.output == "" || len(p.formats) > 1)
	})
	if len(files) < len(p.formats) {
		if _, err := w.Write(p.artifacts[pipeline.FormatTerm]); err != nil {
			return nil, false, err
		}
		toStdout = true
	}

	if p.output == "" && p.input == "" {
		switch len(files) {
		case 0:
			return nil, toStdout, nil
		case 1:
			if toStdout {
				break
			}
			_, err := w.Write(p.artifacts[files[0]])
			return nil, true, err
		}
		return nil, toStdout, fmt.Errorf("reading from stdin with formats %s: use -o to name the output files", strings.Join(files, ","))
	}

	for _, format := range files {
		path := artifactPath(p.input, p.output, format, len(files) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, toStdout, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return paths, toStdout, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, toStdout, nil
}

// artifactPath names the file for one format. A single format goes to
// output verbatim; otherwise output (or the input) is a base path.
func artifactPath(input, output, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	base := output
	if base == "" {
		base = input
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

// parseFormats splits the --format flag. Empty means svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return formats
}

func total(values []int) int {
	var sum int
	for _, v := range values {
		sum += v
	}
	return sum
}
