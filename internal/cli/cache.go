package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mysportsfeeds/pkg/store"
)

// cacheCommand creates the response store management command. It operates
// on the file store directory; the redis store expires entries by TTL.
func (c *CLI) cacheCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the file response store",
	}
	cmd.PersistentFlags().StringVar(&dir, "store-dir", "", "file store directory (default from config, results/)")

	open := func() (*store.File, error) {
		if dir != "" {
			return store.NewFile(dir), nil
		}
		cfg, err := c.loadConfig()
		if err != nil {
			return nil, err
		}
		return store.NewFile(cfg.Store.Dir()), nil
	}

	cmd.AddCommand(c.cachePathCommand(open))
	cmd.AddCommand(c.cacheListCommand(open))
	cmd.AddCommand(c.cacheClearCommand(open))

	return cmd
}

type fileStoreOpener func() (*store.File, error)

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand(open fileStoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := open()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fs.Dir())
			return nil
		},
	}
}

// cacheListCommand creates the "cache list" subcommand.
func (c *CLI) cacheListCommand(open fileStoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := open()
			if err != nil {
				return err
			}
			entries, err := fs.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				printInfo(out, "Store is empty")
				printDetail(out, "Directory: %s", fs.Dir())
				return nil
			}
			for _, e := range entries {
				printKeyValue(out, e.ModTime.Format("2006-01-02 15:04"), fmt.Sprintf("%s %s", e.Name, StyleDim.Render(formatSize(e.Size))))
			}
			printDetail(out, "%d entries in %s", len(entries), fs.Dir())
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand(open fileStoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := open()
			if err != nil {
				return err
			}
			count, err := fs.Clear()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count == 0 {
				printInfo(out, "Store is empty")
				return nil
			}
			printSuccess(out, "Cleared %d stored responses", count)
			printDetail(out, "Directory: %s", fs.Dir())
			return nil
		},
	}
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
