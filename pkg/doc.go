// Package pkg holds the libraries behind the msf client for the
// MySportsFeeds pull API.
//
// # Overview
//
// A request flows through the packages in this order:
//
//	positional values + "key=value" strings
//	         ↓
//	    [feeds] (normalize parameters, validate, build URL and filename)
//	         ↓
//	    [msf] (authenticate, send one GET, route 200 / 304 / failure)
//	         ↓
//	    [decode] (JSON tree, XML element tree or raw CSV)
//	         ↓
//	    [store] (keep the raw response for later 304 replies)
//
// # Quick Start
//
//	c, err := msf.NewClient(msf.Config{APIVersion: "1.2", StoreType: store.TypeFile})
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//	c.Authenticate(user, password)
//
//	doc, err := c.GetData(ctx, "nfl", "2018-2019-regular", "daily_player_stats", "json",
//	    "fordate=20181231")
//
// # Main Packages
//
// [msf] - The client. Holds credentials and the last decoded document and
// records Prometheus metrics when given a registerer.
//
// [feeds] - The closed feed catalog, output formats, ordered query
// parameters, URL construction and store filenames.
//
// [decode] - One decoder per output format behind the [decode.Document]
// interface.
//
// [store] - Raw response backends: none, a directory of files, or Redis.
//
// [httputil] - HTTP client construction and the single GET the client uses.
//
// [config] - TOML config file, .env file and MSF_* environment variables.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Process-wide hooks for request and store events.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include live Redis tests
//
// [msf]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/msf
// [feeds]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/feeds
// [decode]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/decode
// [decode.Document]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/decode#Document
// [store]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/store
// [httputil]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/httputil
// [config]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/observability
package pkg
