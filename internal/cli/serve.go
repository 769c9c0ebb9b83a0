package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/pipeline"
	"github.com/matzehuels/monthgraph/pkg/server"
)

// serveCommand creates the serve command for the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render HTTP API",
		Long: `Serve the layout and render HTTP API.

Routes:
  GET  /healthz              liveness and build info
  POST /v1/layout            JSON layout document for a series
  POST /v1/render?format=svg rendered artifact (svg, png, pdf, json, term)

Request bodies use the same fields as the pipeline options, e.g.
{"values": [3, 0, 7], "start_date": "2024-03-01"}. Fields left out fall
back to the config file. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(appName+" API"))
			printKeyValue(out, "address", addr)
			printKeyValue(out, "cache", c.cfg.Cache.Backend+" "+cacheLocation(c.cfg))
			if noCache {
				printWarning(out, "caching disabled")
			}

			srv := server.New(server.Config{
				Runner:  runner,
				Metrics: c.cfg.Metrics(),
				Defaults: pipeline.Options{
					Height:   c.cfg.Graph.Height,
					Padding:  c.cfg.PaddingID(),
					NoLabels: !c.cfg.Graph.Labels,
					Style:    c.cfg.Graph.Style,
					Colors:   c.cfg.Colors,
				},
				Logger: loggerFromContext(ctx),
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
