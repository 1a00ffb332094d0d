// Package msf is a client for the MySportsFeeds pull API.
//
// # Overview
//
// A [Client] turns a feed request into one authenticated GET, decodes the
// response and, when a store is configured, keeps the raw bytes so that a
// later 304 Not Modified can be answered locally:
//
//	c, err := msf.NewClient(msf.Config{APIVersion: "1.2", StoreType: store.TypeFile})
//	if err != nil {
//	    return err
//	}
//	c.Authenticate(user, pass)
//	doc, err := c.GetData(ctx, "nfl", "2018-2019-regular", "daily_player_stats", "json",
//	    "fordate=20181231")
//
// # Request Flow
//
//  1. Credentials are checked (AUTH_REQUIRED)
//  2. Positional values and "key=value" strings are merged ([feeds.ParseArgs])
//  3. force is defaulted: false with a store, true without one
//  4. Feed and format are validated (UNKNOWN_FEED, UNSUPPORTED_FORMAT)
//  5. The URL is built and requested once, with no retry
//  6. 200 decodes and stores the body; 304 reads the stored copy
//     (CACHE_MISS if there is none); anything else is REQUEST_FAILED
//
// # Concurrency
//
// A Client is not safe for concurrent use. Credentials and the last decoded
// document are unsynchronized fields.
//
// # Metrics
//
// Set [Config.Registerer] to export msf_requests_total,
// msf_request_duration_seconds and msf_cache_reads_total.
package msf
