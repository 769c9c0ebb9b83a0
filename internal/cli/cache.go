package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached layout and artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if c.cfg.Cache.Backend == config.BackendNone {
				printInfo(out, "Cache is disabled")
				return nil
			}

			cc, err := c.openCache(ctx, false)
			if err != nil {
				return err
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				return fmt.Errorf("%s cache cannot be cleared", c.cfg.Cache.Backend)
			}
			if err := clearer.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess(out, "Cleared %s cache", c.cfg.Cache.Backend)
			printDetail(out, "Location: %s", cacheLocation(c.cfg))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cacheLocation(c.cfg))
			return nil
		},
	}
}

// cacheLocation describes the configured backend's storage location.
func cacheLocation(cfg config.Config) string {
	cc := cfg.Cache
	switch cc.Backend {
	case config.BackendFile:
		if cc.Dir != "" {
			return cc.Dir
		}
		dir, err := cache.DefaultDir()
		if err != nil {
			return "unavailable: " + err.Error()
		}
		return dir
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d (prefix %q)", cc.RedisAddr, cc.RedisDB, cc.RedisPrefix)
	case config.BackendMongo:
		return fmt.Sprintf("%s (%s.%s)", cc.MongoURI, cc.MongoDatabase, cc.MongoCollection)
	}
	return "disabled"
}
