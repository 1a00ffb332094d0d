package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mysportsfeeds/pkg/buildinfo"
	"github.com/matzehuels/mysportsfeeds/pkg/config"
)

// appName is the application name used for display.
const appName = "msf"

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
	envFile    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// verbose reports whether debug logging was requested.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "msf pulls sports data feeds from MySportsFeeds",
		Long:         `msf is a command-line client for the MySportsFeeds pull API. It fetches scores, schedules, standings and player statistics as JSON, XML or CSV, optionally keeping raw responses in a local or Redis store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/msf/config.toml)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file with MSF_* variables")

	root.AddCommand(c.getCommand())
	root.AddCommand(c.feedsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig resolves the config file path and loads settings from it, the
// env file and the environment.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.resolveConfigPath()
	c.Logger.Debug("Loading config", "path", path, "env_file", c.envFile)
	return config.Load(path, c.envFile)
}

// resolveConfigPath returns the --config value or the default location.
// Without a home directory it returns "" and settings come from the
// environment alone.
func (c *CLI) resolveConfigPath() string {
	if c.configPath != "" {
		return c.configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}
