package feeds

// Feed names one of the fixed data endpoints served by the pull API.
type Feed string

// The feed catalog. Names are matched exactly; there is no case folding.
const (
	CumulativePlayerStats   Feed = "cumulative_player_stats"
	FullGameSchedule        Feed = "full_game_schedule"
	DailyGameSchedule       Feed = "daily_game_schedule"
	DailyPlayerStats        Feed = "daily_player_stats"
	GameBoxscore            Feed = "game_boxscore"
	Scoreboard              Feed = "scoreboard"
	GamePlayByPlay          Feed = "game_playbyplay"
	PlayerGamelogs          Feed = "player_gamelogs"
	TeamGamelogs            Feed = "team_gamelogs"
	RosterPlayers           Feed = "roster_players"
	GameStartingLineup      Feed = "game_startinglineup"
	ActivePlayers           Feed = "active_players"
	OverallTeamStandings    Feed = "overall_team_standings"
	ConferenceTeamStandings Feed = "conference_team_standings"
	DivisionTeamStandings   Feed = "division_team_standings"
	PlayoffTeamStandings    Feed = "playoff_team_standings"
	PlayerInjuries          Feed = "player_injuries"
	DailyDFS                Feed = "daily_dfs"
	CurrentSeason           Feed = "current_season"
	LatestUpdates           Feed = "latest_updates"
)

var catalog = []Feed{
	CumulativePlayerStats,
	FullGameSchedule,
	DailyGameSchedule,
	DailyPlayerStats,
	GameBoxscore,
	Scoreboard,
	GamePlayByPlay,
	PlayerGamelogs,
	TeamGamelogs,
	RosterPlayers,
	GameStartingLineup,
	ActivePlayers,
	OverallTeamStandings,
	ConferenceTeamStandings,
	DivisionTeamStandings,
	PlayoffTeamStandings,
	PlayerInjuries,
	DailyDFS,
	CurrentSeason,
	LatestUpdates,
}

var catalogSet = func() map[Feed]struct{} {
	m := make(map[Feed]struct{}, len(catalog))
	for _, f := range catalog {
		m[f] = struct{}{}
	}
	return m
}()

// All returns the feed catalog in its canonical order.
// The returned slice is a copy and may be modified by the caller.
func All() []Feed {
	out := make([]Feed, len(catalog))
	copy(out, catalog)
	return out
}

// IsValidFeed reports whether name is one of the catalog feeds.
func IsValidFeed(name string) bool {
	_, ok := catalogSet[Feed(name)]
	return ok
}

// Valid reports whether f is a catalog feed.
func (f Feed) Valid() bool { return IsValidFeed(string(f)) }

// LeagueOnly reports whether the feed is addressed without a season
// path segment. Only current_season is league-global.
func (f Feed) LeagueOnly() bool { return f == CurrentSeason }

func (f Feed) String() string { return string(f) }
