package feeds

import (
	"strings"

	"github.com/matzehuels/mysportsfeeds/pkg/errors"
)

// Reserved parameter keys.
const (
	ParamForce   = "force"
	ParamGameID  = "gameid"
	ParamForDate = "fordate"
)

// Request is one fully resolved feed request.
type Request struct {
	League string
	Season string
	Feed   Feed
	Format Format
	Params *Params
}

// ParseArgs merges positional arguments with "key=value" strings.
//
// Keys league, season, feed and format overwrite the matching positional
// value; any other key is appended to Params. A repeated key keeps its first
// position and takes the last value.
func ParseArgs(league, season, feed, format string, kv []string) Request {
	req := Request{
		League: league,
		Season: season,
		Feed:   Feed(feed),
		Format: Format(format),
		Params: &Params{},
	}
	for _, pair := range kv {
		key, value := SplitKV(pair)
		switch key {
		case "league":
			req.League = value
		case "season":
			req.Season = value
		case "feed":
			req.Feed = Feed(value)
		case "format":
			req.Format = Format(value)
		default:
			req.Params.Set(key, value)
		}
	}
	return req
}

// WithDefaultForce returns a copy of r whose Params contain a force key.
// An explicit force value is kept. Otherwise force leads the parameter
// list: false when a response store exists, so the API may answer 304, and
// true when it does not.
func (r Request) WithDefaultForce(haveStore bool) Request {
	if r.Params.Has(ParamForce) {
		r.Params = r.Params.Clone()
		return r
	}
	force := "true"
	if haveStore {
		force = "false"
	}
	p := NewParams(ParamForce, force)
	for k, v := range r.Params.All() {
		p.Set(k, v)
	}
	r.Params = p
	return r
}

// Validate checks the feed name, the output format and the league and
// season path segments, in that order.
func (r Request) Validate() error {
	if !r.Feed.Valid() {
		return errors.New(errors.ErrCodeUnknownFeed, "unknown feed '%s'", r.Feed)
	}
	if !r.Format.Valid() {
		return errors.New(errors.ErrCodeUnsupportedFormat, "unsupported format '%s'", r.Format)
	}
	if err := errors.ValidatePathSegment("league", r.League); err != nil {
		return err
	}
	return errors.ValidatePathSegment("season", r.Season)
}

// URL builds the request URL below base, e.g.
//
//	<base>/nfl/2018-2019-regular/daily_player_stats.json?force=true
//
// current_season omits the season segment.
func (r Request) URL(base string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "/"))
	b.WriteString("/")
	b.WriteString(r.League)
	if !r.Feed.LeagueOnly() {
		b.WriteString("/")
		b.WriteString(r.Season)
	}
	b.WriteString("/")
	b.WriteString(string(r.Feed))
	b.WriteString(".")
	b.WriteString(string(r.Format))

	if q := r.Params.Encode(); q != "" {
		if strings.Contains(b.String(), "?") {
			b.WriteString("&")
		} else {
			b.WriteString("?")
		}
		b.WriteString(q)
	}
	return b.String()
}

// Filename derives the storage name of the response:
//
//	<feed>-<league>-<season>[-<gameid>][-<fordate>].<format>
//
// It depends only on those fields, so a 304 read finds what a 200 wrote.
func (r Request) Filename() string {
	name := string(r.Feed) + "-" + r.League + "-" + r.Season
	if v, ok := r.Params.Get(ParamGameID); ok {
		name += "-" + v
	}
	if v, ok := r.Params.Get(ParamForDate); ok {
		name += "-" + v
	}
	return name + "." + string(r.Format)
}
