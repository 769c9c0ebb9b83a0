package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/chart"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		sf     seriesFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute the bar layout of a month as a JSON document",
		Long: `Compute the bar layout of a month as a JSON document.

The document holds the bar and gap widths, every segment with its
position, class and color, and the day labels. It is the same document
'render -f json' and the HTTP API produce.

The output defaults to <input>.layout.json, or stdout when reading from
stdin. Layouts are cached for the current day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args, sf, output)
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")

	return cmd
}

// runLayout computes the layout document and writes it out.
func (c *CLI) runLayout(cmd *cobra.Command, args []string, sf seriesFlags, output string) error {
	ctx := cmd.Context()
	series, input, err := readSeries(cmd, args)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, sf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Computing layout...")
	spinner.Start()
	data, cacheHit, err := runner.LayoutDocument(ctx, c.options(sf, series))
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	outputPath := output
	if outputPath == "" && input != "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	doc, err := chart.UnmarshalDocument(data)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSuccess(out, "Layout complete")
	printFile(out, outputPath)
	printStats(out, seriesStats{
		days:  len(doc.Values),
		max:   doc.Max,
		total: total(doc.Values),
		today: doc.TodayIndex,
		cache: cacheStatus(cacheHit),
	})
	printNextStep(out, "Render", appName+" render "+displayInput(input)+" -f svg")
	return nil
}

func displayInput(input string) string {
	if input == "" {
		return "-"
	}
	return input
}
