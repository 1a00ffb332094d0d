package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mysportsfeeds/pkg/config"
	"github.com/matzehuels/mysportsfeeds/pkg/decode"
	"github.com/matzehuels/mysportsfeeds/pkg/errors"
	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
	"github.com/matzehuels/mysportsfeeds/pkg/msf"
	"github.com/matzehuels/mysportsfeeds/pkg/store"
)

// getOptions holds flag values for the get command. Flags that were not
// set leave the loaded config untouched.
type getOptions struct {
	format     string
	output     string
	apiVersion string
	baseURL    string
	username   string
	password   string
	storeType  string
	storeDir   string
	redisURL   string
	insecure   bool
	timeout    time.Duration
	quiet      bool
}

func (c *CLI) getCommand() *cobra.Command {
	opts := getOptions{format: "json"}

	cmd := &cobra.Command{
		Use:   "get <league> <season> <feed> [key=value...]",
		Short: "Fetch a feed and print the decoded response",
		Long: `Fetch one feed from the MySportsFeeds pull API.

Arguments after the feed name are "key=value" query parameters. The keys
league, season, feed and format replace the positional values.`,
		Example: `  msf get nfl 2018-2019-regular daily_player_stats fordate=20181231
  msf get nba latest scoreboard fordate=20190101 -f xml -o scoreboard.xml
  msf get mlb "" current_season fordate=20170401 --store file`,
		Args: cobra.MinimumNArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 2 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0, len(feeds.All()))
			for _, f := range feeds.All() {
				names = append(names, f.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			return c.runGet(cmd, cfg, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: json, xml or csv")
	f.StringVarP(&opts.output, "output", "o", "", "write the response to a file instead of stdout")
	f.StringVar(&opts.apiVersion, "api-version", "", "API version (default from config, 1.2)")
	f.StringVar(&opts.baseURL, "base-url", "", "override the API endpoint")
	f.StringVarP(&opts.username, "user", "u", "", "account username (default $MSF_USERNAME)")
	f.StringVarP(&opts.password, "password", "p", "", "account password (default $MSF_PASSWORD)")
	f.StringVar(&opts.storeType, "store", "", "response store: none, file or redis")
	f.StringVar(&opts.storeDir, "store-dir", "", "directory for the file store")
	f.StringVar(&opts.redisURL, "redis-url", "", "redis server for the redis store")
	f.BoolVar(&opts.insecure, "insecure", false, "skip TLS certificate verification")
	f.DurationVar(&opts.timeout, "timeout", 0, "request timeout (default 30s)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "no spinner or status output")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (o getOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("api-version") {
		cfg.APIVersion = o.apiVersion
	}
	if changed("user") {
		cfg.Username = o.username
	}
	if changed("password") {
		cfg.Password = o.password
	}
	if changed("store") {
		cfg.Store.Type = o.storeType
	}
	if changed("store-dir") {
		cfg.Store.Location = o.storeDir
	}
	if changed("redis-url") {
		cfg.Store.RedisURL = o.redisURL
	}
	if changed("insecure") {
		cfg.InsecureSkipVerify = o.insecure
	}
	if changed("timeout") {
		cfg.Timeout = o.timeout.String()
	}
}

func (c *CLI) runGet(cmd *cobra.Command, cfg config.Config, opts getOptions, args []string) error {
	client, err := c.newClient(cfg, opts.baseURL)
	if err != nil {
		return err
	}
	defer client.Close()

	if cfg.Username != "" || cfg.Password != "" {
		client.Authenticate(cfg.Username, cfg.Password)
	}

	league, season, feed, kv := args[0], args[1], args[2], args[3:]
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	var spinner *Spinner
	if !opts.quiet && !c.verbose() {
		spinner = newSpinner(ctx, stderr, fmt.Sprintf("Fetching %s...", feed))
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	doc, err := client.GetData(ctx, league, season, feed, opts.format, kv...)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %s", feed))

	if opts.output == "" {
		return encodeTo(cmd.OutOrStdout(), doc)
	}
	if err := writeDocument(opts.output, doc); err != nil {
		return err
	}
	if !opts.quiet {
		printSuccess(stderr, "Saved %s response", doc.Format())
		printFile(stderr, opts.output)
	}
	return nil
}

// newClient builds a client from resolved settings. baseURL, when set,
// replaces the endpoint derived from the API version.
func (c *CLI) newClient(cfg config.Config, baseURL string) (*msf.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, _ := cfg.TimeoutDuration()
	ttl, _ := cfg.Store.TTLDuration()

	return msf.NewClient(msf.Config{
		APIVersion:         cfg.APIVersion,
		Verbose:            cfg.Verbose || c.verbose(),
		StoreType:          store.Type(cfg.Store.Type),
		StoreLocation:      cfg.Store.Dir(),
		RedisURL:           cfg.Store.RedisURL,
		RedisTTL:           ttl,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Timeout:            timeout,
		BaseURL:            baseURL,
		Logger:             c.Logger,
	})
}

func writeDocument(path string, doc decode.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(errors.ErrCodeStorage, cerr, "close %s", path)
		}
	}()
	return encodeTo(f, doc)
}

func encodeTo(w io.Writer, doc decode.Document) error {
	if err := doc.Encode(w); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s output", doc.Format())
	}
	return nil
}
