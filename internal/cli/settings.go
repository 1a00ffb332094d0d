package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// configCommand shows where settings come from and what they resolve to.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Configuration"))
			printKeyValue(out, "config file", orNone(c.resolveConfigPath()))
			printKeyValue(out, "env file", orNone(c.envFile))
			printKeyValue(out, "api version", cfg.APIVersion)
			printKeyValue(out, "username", orNone(cfg.Username))
			printKeyValue(out, "password", mask(cfg.Password))
			printKeyValue(out, "store", cfg.Store.Type)
			switch cfg.Store.Type {
			case "file":
				printKeyValue(out, "store location", cfg.Store.Dir())
			case "redis":
				printKeyValue(out, "redis url", cfg.Store.RedisURL)
				printKeyValue(out, "redis ttl", orNone(cfg.Store.TTL))
			}
			printKeyValue(out, "timeout", orNone(cfg.Timeout))
			printKeyValue(out, "verbose", strconv.FormatBool(cfg.Verbose))
			if cfg.InsecureSkipVerify {
				printWarning(out, "TLS certificate verification is disabled")
			}
			if cfg.Username == "" {
				printDetail(out, "Set MSF_USERNAME and MSF_PASSWORD to authenticate")
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.resolveConfigPath())
			return nil
		},
	})

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return StyleDim.Render("(none)")
	}
	return s
}

// mask hides all but a password's length.
func mask(s string) string {
	if s == "" {
		return StyleDim.Render("(none)")
	}
	return strings.Repeat("*", len(s))
}
