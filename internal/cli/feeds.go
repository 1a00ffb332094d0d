package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
)

// feedsCommand lists the feed catalog.
func (c *CLI) feedsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "List available feeds and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain {
				for _, f := range feeds.All() {
					fmt.Fprintln(out, f)
				}
				return nil
			}

			fmt.Fprintln(out, StyleTitle.Render("Feeds"))
			for _, f := range feeds.All() {
				line := "  " + StyleValue.Render(f.String())
				if f.LeagueOnly() {
					line += " " + StyleDim.Render("(no season segment)")
				}
				fmt.Fprintln(out, line)
			}

			formats := make([]string, 0, len(feeds.Formats()))
			for _, f := range feeds.Formats() {
				formats = append(formats, f.String())
			}
			fmt.Fprintln(out)
			printKeyValue(out, "Formats", strings.Join(formats, ", "))
			printDetail(out, "%s feeds", StyleNumber.Render(fmt.Sprint(len(feeds.All()))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one feed name per line without styling")
	return cmd
}
