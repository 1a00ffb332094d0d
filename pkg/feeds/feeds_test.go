package feeds

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/mysportsfeeds/pkg/errors"
)

const testBase = "https://api.mysportsfeeds.com/v1.2/pull"

func TestIsValidFeed(t *testing.T) {
	for _, f := range All() {
		if !IsValidFeed(string(f)) {
			t.Errorf("IsValidFeed(%q) = false, want true", f)
		}
	}

	if got := len(All()); got != 20 {
		t.Errorf("catalog size = %d, want 20", got)
	}

	invalid := []string{"", "Scoreboard", "scoreboard ", "box_score", "current-season", "LATEST_UPDATES"}
	for _, name := range invalid {
		if IsValidFeed(name) {
			t.Errorf("IsValidFeed(%q) = true, want false", name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	if All()[0] != CumulativePlayerStats {
		t.Error("All() should return an independent copy")
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"json", true},
		{"xml", true},
		{"csv", true},
		{"JSON", false},
		{"yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidFormat(tt.input); got != tt.want {
			t.Errorf("IsValidFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSplitKV(t *testing.T) {
	tests := []struct {
		input     string
		key, want string
	}{
		{"fordate=20181231", "fordate", "20181231"},
		{"  team = bos ", "team", "bos"},
		{"player=a=b", "player", "a=b"},
		{"novalue", "novalue", ""},
		{"empty=", "empty", ""},
	}

	for _, tt := range tests {
		k, v := SplitKV(tt.input)
		if k != tt.key || v != tt.want {
			t.Errorf("SplitKV(%q) = (%q, %q), want (%q, %q)", tt.input, k, v, tt.key, tt.want)
		}
	}
}

func TestParamsOrderAndDuplicates(t *testing.T) {
	p := &Params{}
	p.Set("team", "bos")
	p.Set("fordate", "20181231")
	p.Set("team", "nyy")

	if got, want := p.Encode(), "team=nyy&fordate=20181231"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	var nilParams *Params
	if nilParams.Len() != 0 || nilParams.Has("x") || nilParams.Encode() != "" {
		t.Error("nil Params should behave as empty")
	}
}

func TestParseArgs(t *testing.T) {
	req := ParseArgs("nba", "", "", "", []string{
		"season=2016-2017-regular",
		"feed = player_gamelogs",
		"format=xml",
		"player=stephen-curry",
		"team=gsw",
		"league=nfl",
	})

	if req.League != "nfl" {
		t.Errorf("League = %q, want nfl", req.League)
	}
	if req.Season != "2016-2017-regular" {
		t.Errorf("Season = %q, want 2016-2017-regular", req.Season)
	}
	if req.Feed != PlayerGamelogs {
		t.Errorf("Feed = %q, want %q", req.Feed, PlayerGamelogs)
	}
	if req.Format != FormatXML {
		t.Errorf("Format = %q, want xml", req.Format)
	}

	var keys []string
	for k := range req.Params.All() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"player", "team"}, keys); diff != "" {
		t.Errorf("param keys mismatch (-want +got):\n%s", diff)
	}
}

func TestWithDefaultForce(t *testing.T) {
	tests := []struct {
		name      string
		kv        []string
		haveStore bool
		want      string
	}{
		{"file store", nil, true, "force=false"},
		{"no store", nil, false, "force=true"},
		{"explicit kept", []string{"force=true"}, true, "force=true"},
		{"force leads", []string{"fordate=20181231"}, false, "force=true&fordate=20181231"},
		{"explicit keeps position", []string{"fordate=1", "force=false"}, false, "fordate=1&force=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseArgs("nfl", "latest", "scoreboard", "json", tt.kv)
			got := req.WithDefaultForce(tt.haveStore).Params.Encode()
			if got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithDefaultForceDoesNotMutate(t *testing.T) {
	req := ParseArgs("nfl", "latest", "scoreboard", "json", []string{"team=ne"})
	_ = req.WithDefaultForce(true)
	if req.Params.Has(ParamForce) {
		t.Error("WithDefaultForce should not modify the receiver's params")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code errors.Code
	}{
		{"valid", Request{League: "nfl", Season: "latest", Feed: Scoreboard, Format: FormatJSON}, ""},
		{"unknown feed", Request{League: "nfl", Feed: "box_score", Format: FormatJSON}, errors.ErrCodeUnknownFeed},
		{"empty feed", Request{League: "nfl", Format: FormatJSON}, errors.ErrCodeUnknownFeed},
		{"bad format", Request{League: "nfl", Feed: Scoreboard, Format: "yaml"}, errors.ErrCodeUnsupportedFormat},
		{"feed checked first", Request{Feed: "nope", Format: "yaml"}, errors.ErrCodeUnknownFeed},
		{"bad season", Request{League: "nfl", Season: "../x", Feed: Scoreboard, Format: FormatCSV}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestURL(t *testing.T) {
	req := ParseArgs("nfl", "2018-2019-regular", "daily_player_stats", "json", []string{"fordate=20181231"})
	req = req.WithDefaultForce(false)

	want := testBase + "/nfl/2018-2019-regular/daily_player_stats.json?force=true&fordate=20181231"
	if got := req.URL(testBase); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURLSeasonSegment(t *testing.T) {
	for _, f := range All() {
		req := Request{League: "mlb", Season: "2017-regular", Feed: f, Format: FormatJSON}
		u := req.URL(testBase)
		hasSeason := strings.Contains(u, "/2017-regular/")
		if f == CurrentSeason && hasSeason {
			t.Errorf("%s URL should not contain season: %s", f, u)
		}
		if f != CurrentSeason && !hasSeason {
			t.Errorf("%s URL should contain season: %s", f, u)
		}
	}

	req := Request{League: "mlb", Feed: CurrentSeason, Format: FormatXML, Params: NewParams("fordate", "20170401")}
	if got, want := req.URL(testBase+"/"), testBase+"/mlb/current_season.xml?fordate=20170401"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURLNoEncoding(t *testing.T) {
	req := Request{League: "nhl", Season: "latest", Feed: RosterPlayers, Format: FormatCSV,
		Params: NewParams("team", "bos,nyr", "player", "a b")}
	want := testBase + "/nhl/latest/roster_players.csv?team=bos,nyr&player=a b"
	if got := req.URL(testBase); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURLBaseWithQuery(t *testing.T) {
	req := Request{League: "nfl", Season: "latest", Feed: Scoreboard, Format: FormatJSON, Params: NewParams("force", "true")}
	got := req.URL("https://proxy.example/pull?key=1")
	if !strings.Contains(got, "scoreboard.json&force=true") {
		t.Errorf("URL() = %q, should join with '&' when '?' is present", got)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
		want   string
	}{
		{"plain", nil, "game_boxscore-nfl-2018-regular.json"},
		{"gameid", NewParams("gameid", "20181231-NE-NYJ"), "game_boxscore-nfl-2018-regular-20181231-NE-NYJ.json"},
		{"fordate", NewParams("fordate", "20181231"), "game_boxscore-nfl-2018-regular-20181231.json"},
		{"both ordered", NewParams("fordate", "20181231", "gameid", "42", "force", "false"), "game_boxscore-nfl-2018-regular-42-20181231.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{League: "nfl", Season: "2018-regular", Feed: GameBoxscore, Format: FormatJSON, Params: tt.params}
			if got := req.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilenameDeterministic(t *testing.T) {
	a := ParseArgs("nba", "latest", "scoreboard", "xml", []string{"fordate=20190101", "force=true"})
	b := ParseArgs("nba", "latest", "scoreboard", "xml", []string{"force=false", "fordate=20190101"})
	if a.Filename() != b.Filename() {
		t.Errorf("Filename() differs: %q vs %q", a.Filename(), b.Filename())
	}
}
