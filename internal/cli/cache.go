package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shortpath/pkg/cache"
	"github.com/matzehuels/shortpath/pkg/config"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. Only the file
// backend can be cleared; redis entries expire through their TTL.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if c.Config.Cache.Backend != config.BackendFile {
				printWarning(w, "Cache backend is %q, nothing to clear locally", c.Config.Cache.Backend)
				return nil
			}

			dir, err := c.Config.CacheDir()
			if err != nil {
				return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not locate cache directory")
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(w, "Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not open cache directory")
			}
			count, err := fc.Clear()
			if err != nil {
				return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not clear cache")
			}

			printSuccess(w, "Cleared %d cached results", count)
			printDetail(w, "Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.Config.CacheDir()
			if err != nil {
				return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not locate cache directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
