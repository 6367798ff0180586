package domain

// StatusFinal is the detailed status the provider reports once a game is
// complete. Daily summaries are built only from games in this state.
const StatusFinal = "Final"

// Game is one schedule entry, flattened from the provider's nested
// dates/games payload. Score and decision fields stay zero-valued until
// the provider populates them (pre-game or in progress).
type Game struct {
	// GameID is the provider's game identifier (gamePk).
	GameID int `json:"game_id"`

	// GameDate is the local calendar date of the game, YYYY-MM-DD.
	GameDate     string `json:"game_date"`
	GameDateTime string `json:"game_datetime,omitempty"`
	GameType     string `json:"game_type,omitempty"`
	Status       string `json:"status"`

	// DoubleHeader is "Y" (traditional), "S" (split) or "N". GameNum
	// distinguishes the games of a doubleheader day.
	DoubleHeader string `json:"doubleheader,omitempty"`
	GameNum      int    `json:"game_num,omitempty"`

	AwayID    int    `json:"away_id"`
	AwayName  string `json:"away_name"`
	AwayScore int    `json:"away_score"`
	HomeID    int    `json:"home_id"`
	HomeName  string `json:"home_name"`
	HomeScore int    `json:"home_score"`

	AwayProbablePitcher string `json:"away_probable_pitcher,omitempty"`
	HomeProbablePitcher string `json:"home_probable_pitcher,omitempty"`

	VenueID   int    `json:"venue_id,omitempty"`
	VenueName string `json:"venue_name,omitempty"`

	CurrentInning int    `json:"current_inning,omitempty"`
	InningState   string `json:"inning_state,omitempty"`

	WinningTeam    string `json:"winning_team,omitempty"`
	LosingTeam     string `json:"losing_team,omitempty"`
	WinningPitcher string `json:"winning_pitcher,omitempty"`
	LosingPitcher  string `json:"losing_pitcher,omitempty"`
	SavePitcher    string `json:"save_pitcher,omitempty"`

	// Summary is a one-line rendering of the matchup, score and status.
	Summary string `json:"summary,omitempty"`
}

// ScoringPlay is one run-scoring event of a game, in event order.
type ScoringPlay struct {
	Inning      int    `json:"inning"`
	HalfInning  string `json:"half_inning"`
	Description string `json:"description"`
	AwayScore   int    `json:"away_score"`
	HomeScore   int    `json:"home_score"`
}

// Highlight is one video highlight attached to a game, reduced to its
// preferred playback URL.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	URL         string `json:"url,omitempty"`
}

// GameResult bundles the scoring plays and highlights of one team's game
// on one day. Empty slices are valid results: a game can exist with no
// scoring plays or no published highlights yet.
type GameResult struct {
	ScoringPlays   []ScoringPlay `json:"scoring_plays"`
	GameHighlights []Highlight   `json:"game_highlights"`
}

// DailySummary is the per-game projection used in the league-wide daily
// results digest.
type DailySummary struct {
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	HomeScore   int    `json:"home_score"`
	AwayTeam    string `json:"away_team"`
	AwayScore   int    `json:"away_score"`
	WinningTeam string `json:"winning_team"`
	LosingTeam  string `json:"losing_team"`

	// MVP is the winning pitcher, or "N/A" when the provider has not
	// attributed one.
	MVP string `json:"MVP"`
}
