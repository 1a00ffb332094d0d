// Package config loads client settings from a TOML file, a .env file and
// the environment.
//
// Sources, in order of precedence:
//  1. Environment variables (MSF_*)
//  2. A .env file in the working directory (never overrides the environment)
//  3. The TOML config file
//  4. Hard-coded defaults
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	msferrors "github.com/matzehuels/mysportsfeeds/pkg/errors"
)

const appName = "msf"

// Defaults applied when neither file nor environment set a value.
const (
	DefaultAPIVersion    = "1.2"
	DefaultStoreType     = "none"
	DefaultStoreLocation = "results/"
)

// Environment variable names.
const (
	EnvUsername      = "MSF_USERNAME"
	EnvPassword      = "MSF_PASSWORD"
	EnvAPIVersion    = "MSF_API_VERSION"
	EnvStoreType     = "MSF_STORE_TYPE"
	EnvStoreLocation = "MSF_STORE_LOCATION"
	EnvRedisURL      = "MSF_REDIS_URL"
	EnvVerbose       = "MSF_VERBOSE"
	EnvInsecure      = "MSF_INSECURE_SKIP_VERIFY"
)

// Config holds everything needed to build and authenticate a client.
type Config struct {
	APIVersion         string `toml:"api_version"`
	Verbose            bool   `toml:"verbose"`
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
	Timeout            string `toml:"timeout"` // Go duration, e.g. "30s"

	Username string `toml:"username"`
	Password string `toml:"password"`

	Store Store `toml:"store"`
}

// Store holds response store settings.
type Store struct {
	Type     string `toml:"type"`      // none, file or redis
	Location string `toml:"location"`  // directory for the file store
	RedisURL string `toml:"redis_url"` // redis://host:port/db for the redis store
	TTL      string `toml:"ttl"`       // redis entry lifetime, e.g. "24h"
}

// Default returns a Config with defaults applied.
func Default() Config {
	return Config{
		APIVersion: DefaultAPIVersion,
		Store: Store{
			Type:     DefaultStoreType,
			Location: DefaultStoreLocation,
		},
	}
}

// DefaultPath returns the config file path using the XDG standard
// (~/.config/msf/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the TOML file at path over the defaults, then applies envFile
// (if it exists) and the environment. A missing config file is not an error.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, msferrors.Wrap(msferrors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, msferrors.Wrap(msferrors.ErrCodeInvalidConfig, err, "read env file %s", envFile)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setString(&c.Username, EnvUsername)
	setString(&c.Password, EnvPassword)
	setString(&c.APIVersion, EnvAPIVersion)
	setString(&c.Store.Type, EnvStoreType)
	setString(&c.Store.Location, EnvStoreLocation)
	setString(&c.Store.RedisURL, EnvRedisURL)

	setBool := func(dst *bool, key string) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return msferrors.Wrap(msferrors.ErrCodeInvalidConfig, err, "parse %s", key)
		}
		*dst = b
		return nil
	}
	if err := setBool(&c.Verbose, EnvVerbose); err != nil {
		return err
	}
	return setBool(&c.InsecureSkipVerify, EnvInsecure)
}

// Validate checks value formats. It does not require credentials; those
// are checked when a request is made.
func (c Config) Validate() error {
	if c.APIVersion == "" {
		return msferrors.New(msferrors.ErrCodeInvalidConfig, "api_version cannot be empty")
	}
	switch c.Store.Type {
	case "", "none", "file", "redis":
	default:
		return msferrors.New(msferrors.ErrCodeInvalidConfig, "unknown store type %q", c.Store.Type)
	}
	if c.Store.Type == "redis" && c.Store.RedisURL == "" {
		return msferrors.New(msferrors.ErrCodeInvalidConfig, "redis store requires redis_url")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	_, err := c.Store.TTLDuration()
	return err
}

// TimeoutDuration parses Timeout. Empty means zero (use the client default).
func (c Config) TimeoutDuration() (time.Duration, error) {
	return parseDuration("timeout", c.Timeout)
}

// Dir returns the file store directory, falling back to
// DefaultStoreLocation when Location is empty.
func (s Store) Dir() string {
	if s.Location == "" {
		return DefaultStoreLocation
	}
	return s.Location
}

// TTLDuration parses TTL. Empty means zero (no expiry).
func (s Store) TTLDuration() (time.Duration, error) {
	return parseDuration("store.ttl", s.TTL)
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, msferrors.Wrap(msferrors.ErrCodeInvalidConfig, err, "parse %s", field)
	}
	return d, nil
}
