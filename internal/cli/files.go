package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescale/pathscope/internal/config"
	"github.com/rescale/pathscope/internal/localfs"
)

// newLsCmd creates the 'ls' command.
func newLsCmd() *cobra.Command {
	var (
		noHidden bool
		long     bool
	)

	cmd := &cobra.Command{
		Use:   "ls <directory>",
		Short: "List the entries of a directory",
		Long: `List the immediate entries of a directory in the order the
filesystem returns them. Hidden entries are included unless --no-hidden is
given or show_hidden is false in the configuration. An unreadable
configuration file is reported and the defaults are used.

Fails if the path is not a directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				GetLogger().Warn().Err(err).Str("config", configPath()).Msg("using default settings")
				cfg = config.Default()
			}

			explorer := localfs.NewOSExplorer(GetLogger())
			entries, err := explorer.List(args[0])
			if err != nil {
				return err
			}
			if noHidden || !cfg.ShowHidden {
				entries = localfs.WithoutHidden(entries)
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if long {
					kind := "-"
					if e.IsDir {
						kind = "d"
					}
					fmt.Fprintf(out, "%s %10d %s\n", kind, e.Size, e.Name)
					continue
				}
				fmt.Fprintln(out, e.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHidden, "no-hidden", false, "Omit entries whose names start with a dot")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show entry type and size")

	return cmd
}

// newCrawlCmd creates the 'crawl' command.
func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl <path>",
		Short: "Print a directory tree",
		Long: `Print the tree rooted at a path, one name per line, pre-order.
Each level is indented three spaces. A file prints just its own name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explorer := localfs.NewOSExplorer(GetLogger())
			return explorer.Crawl(cmd.OutOrStdout(), args[0])
		},
	}
}
