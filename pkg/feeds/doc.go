// Package feeds describes requests against the MySportsFeeds pull API.
//
// # Overview
//
// The API serves a fixed catalog of [Feed] values in one of three [Format]s.
// A [Request] names a league, a season, a feed, a format and an ordered set
// of extra [Params]. This package turns those into the two things the client
// needs: the request URL and the storage filename of the response.
//
// # Building Requests
//
// Requests come from positional values plus "key=value" strings:
//
//	req := feeds.ParseArgs("nfl", "2018-2019-regular", "daily_player_stats", "json",
//	    []string{"fordate=20181231"})
//	req = req.WithDefaultForce(false)
//	if err := req.Validate(); err != nil {
//	    return err
//	}
//	req.URL("https://api.mysportsfeeds.com/v1.2/pull")
//	// .../nfl/2018-2019-regular/daily_player_stats.json?force=true&fordate=20181231
//
// # URL Shapes
//
// current_season is league-global and has no season segment:
//
//	<base>/<league>/current_season.<format>
//	<base>/<league>/<season>/<feed>.<format>
//
// Query parameters are emitted in insertion order without percent-encoding.
package feeds
