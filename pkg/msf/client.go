package msf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/mysportsfeeds/pkg/decode"
	"github.com/matzehuels/mysportsfeeds/pkg/errors"
	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
	"github.com/matzehuels/mysportsfeeds/pkg/httputil"
	"github.com/matzehuels/mysportsfeeds/pkg/store"
)

// DefaultHost is the API host used to derive the base URL.
const DefaultHost = "api.mysportsfeeds.com"

// BaseURLForVersion returns the pull endpoint for an API version,
// e.g. https://api.mysportsfeeds.com/v1.2/pull.
func BaseURLForVersion(version string) string {
	return fmt.Sprintf("https://%s/v%s/pull", DefaultHost, version)
}

// Config configures a [Client]. It is read once by [NewClient].
type Config struct {
	APIVersion string // API version, e.g. "1.2"; required
	Verbose    bool   // Log each request URL and 304 notices

	StoreType     store.Type    // none (default), file or redis
	StoreLocation string        // Directory for the file store; default "results/"
	RedisURL      string        // Server for the redis store
	RedisTTL      time.Duration // Lifetime of redis entries; 0 keeps them
	Store         store.Store   // Explicit backend; overrides StoreType, StoreLocation and RedisURL

	InsecureSkipVerify bool          // Disable TLS certificate verification
	Timeout            time.Duration // Per-request timeout; 0 means 30s
	BaseURL            string        // Overrides the URL derived from APIVersion
	HTTPClient         *http.Client  // Overrides the client built from the options above

	Logger     *log.Logger           // Defaults to stderr when Verbose, else discarded
	Registerer prometheus.Registerer // Registers request metrics when set
}

// Credentials are the account name and password sent with every request.
type Credentials struct {
	Username string
	Password string
}

// Client requests feeds from the API.
//
// A Client is meant for use by one goroutine at a time: credentials and the
// last decoded document are plain fields with no locking.
type Client struct {
	baseURL   string
	verbose   bool
	storeType store.Type
	http      *http.Client
	store     store.Store
	logger    *log.Logger
	metrics   *Metrics

	creds *Credentials
	last  decode.Document
}

// NewClient validates cfg and builds a Client. The redis store, when
// selected without an explicit Store, is connected here.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIVersion == "" && cfg.BaseURL == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "api version is required")
	}

	storeType, err := store.ParseType(string(cfg.StoreType))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid store type")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURLForVersion(cfg.APIVersion)
	}
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}

	backend, err := openStore(cfg, storeType)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httputil.NewClient(httputil.Options{
			Timeout:            cfg.Timeout,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		})
	}

	return &Client{
		baseURL:   baseURL,
		verbose:   cfg.Verbose,
		storeType: storeType,
		http:      httpClient,
		store:     backend,
		logger:    newLogger(cfg),
		metrics:   NewMetrics(cfg.Registerer),
	}, nil
}

func openStore(cfg Config, t store.Type) (store.Store, error) {
	if cfg.Store != nil {
		return cfg.Store, nil
	}
	switch t {
	case store.TypeFile:
		location := cfg.StoreLocation
		if location == "" {
			location = "results/"
		}
		return store.NewFile(location), nil
	case store.TypeRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "redis store requires a redis url")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r, err := store.OpenRedis(ctx, cfg.RedisURL, store.RedisOptions{TTL: cfg.RedisTTL})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect redis store")
		}
		return r, nil
	default:
		return store.NewNull(), nil
	}
}

func newLogger(cfg Config) *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	var w io.Writer = io.Discard
	if cfg.Verbose {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
}

// Authenticate sets the credentials used for subsequent requests,
// replacing any previous pair. Nothing is validated until a request is made.
func (c *Client) Authenticate(username, password string) {
	c.creds = &Credentials{Username: username, Password: password}
}

// SupportsBasicAuth reports whether this API version accepts HTTP Basic
// credentials. Every supported version does.
func (c *Client) SupportsBasicAuth() bool {
	return true
}

// BaseURL returns the pull endpoint requests are built on.
func (c *Client) BaseURL() string { return c.baseURL }

// StoreType returns the configured store type.
func (c *Client) StoreType() store.Type { return c.storeType }

// Store returns the response store backend.
func (c *Client) Store() store.Store { return c.store }

// LastOutput returns the document decoded by the most recent successful
// request, or nil before the first one.
func (c *Client) LastOutput() decode.Document { return c.last }

// Close releases the store backend.
func (c *Client) Close() error {
	return c.store.Close()
}

// GetData requests a feed using positional values plus "key=value" strings.
//
// Keys league, season, feed and format in kv override the positional values;
// any other key becomes a query parameter. Example:
//
//	doc, err := c.GetData(ctx, "nfl", "2018-2019-regular", "daily_player_stats", "json",
//	    "fordate=20181231")
func (c *Client) GetData(ctx context.Context, league, season, feed, format string, kv ...string) (decode.Document, error) {
	if c.creds == nil {
		return nil, errAuthRequired()
	}
	return c.Fetch(ctx, feeds.ParseArgs(league, season, feed, format, kv))
}

// Fetch requests the feed described by req and returns the decoded document.
//
// Returns:
//   - AUTH_REQUIRED before Authenticate has been called
//   - UNKNOWN_FEED, UNSUPPORTED_FORMAT or INVALID_INPUT for a bad request
//   - NETWORK_ERROR when the request could not be sent
//   - REQUEST_FAILED for any status other than 200 and 304
//   - CACHE_MISS when a 304 arrives and no stored copy can be read
//   - DECODE_ERROR when the body does not parse
func (c *Client) Fetch(ctx context.Context, req feeds.Request) (decode.Document, error) {
	if c.creds == nil {
		return nil, errAuthRequired()
	}

	req = req.WithDefaultForce(c.hasStore())
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// hasStore reports whether responses are kept, which decides the default
// force flag and whether a 200 is persisted.
func (c *Client) hasStore() bool {
	switch c.store.(type) {
	case nil, store.Null, *store.Null:
		return false
	}
	return true
}

func errAuthRequired() error {
	return errors.New(errors.ErrCodeAuthRequired, "you must authenticate() before making requests")
}
