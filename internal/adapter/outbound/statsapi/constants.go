package statsapi

import "time"

// DefaultBaseURL is the public root of the MLB stats service.
const DefaultBaseURL = "https://statsapi.mlb.com/api"

const (
	defaultUserAgent   = "mlb-statsapi-mcp/0.1.0"
	defaultHTTPTimeout = 30 * time.Second
)

// sportID 1 is Major League Baseball.
const sportID = "1"

const (
	epTeams    = "/v1/teams"
	epSchedule = "/v1/schedule"
	epPlayers  = "/v1/sports/1/players"
	epGamePace = "/v1/gamePace"
)

// Hydrations requested alongside schedule fetches. The service returns a
// bare schedule unless asked for decisions, pitchers, plays or media.
const (
	hydrateSchedule   = "decisions,probablePitcher(note),linescore"
	hydrateScoring    = "scoringplays"
	hydrateHighlights = "game(content(highlights(highlights)))"
)
