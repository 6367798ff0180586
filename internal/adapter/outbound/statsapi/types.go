package statsapi

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TeamCode     string `json:"teamCode"`
	FileCode     string `json:"fileCode"`
	TeamName     string `json:"teamName"`
	LocationName string `json:"locationName"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
}

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk       int            `json:"gamePk"`
	GameDate     string         `json:"gameDate"`
	OfficialDate string         `json:"officialDate"`
	GameType     string         `json:"gameType"`
	DoubleHeader string         `json:"doubleHeader"`
	GameNumber   int            `json:"gameNumber"`
	Status       statusResponse `json:"status"`
	Teams        struct {
		Away gameTeamResponse `json:"away"`
		Home gameTeamResponse `json:"home"`
	} `json:"teams"`
	Venue        venueResponse         `json:"venue"`
	Decisions    *decisionsResponse    `json:"decisions"`
	Linescore    *linescoreResponse    `json:"linescore"`
	ScoringPlays []scoringPlayResponse `json:"scoringPlays"`
	Content      *contentResponse      `json:"content"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

// Score and IsWinner are pointers: the service omits them before and
// during games.
type gameTeamResponse struct {
	Score           *int            `json:"score"`
	IsWinner        *bool           `json:"isWinner"`
	Team            teamRefResponse `json:"team"`
	ProbablePitcher *personResponse `json:"probablePitcher"`
}

type teamRefResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type personResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type venueResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type decisionsResponse struct {
	Winner *personResponse `json:"winner"`
	Loser  *personResponse `json:"loser"`
	Save   *personResponse `json:"save"`
}

type linescoreResponse struct {
	CurrentInning int    `json:"currentInning"`
	InningState   string `json:"inningState"`
}

type scoringPlayResponse struct {
	Result struct {
		Description string `json:"description"`
		AwayScore   int    `json:"awayScore"`
		HomeScore   int    `json:"homeScore"`
	} `json:"result"`
	About struct {
		Inning     int    `json:"inning"`
		HalfInning string `json:"halfInning"`
	} `json:"about"`
}

type contentResponse struct {
	Highlights *struct {
		Highlights *struct {
			Items []highlightResponse `json:"items"`
		} `json:"highlights"`
	} `json:"highlights"`
}

type highlightResponse struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Playbacks   []playbackResponse `json:"playbacks"`
}

type playbackResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type playersResponse struct {
	People []playerResponse `json:"people"`
}

type playerResponse struct {
	ID              int             `json:"id"`
	FullName        string          `json:"fullName"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	PrimaryNumber   string          `json:"primaryNumber"`
	CurrentTeam     teamRefResponse `json:"currentTeam"`
	PrimaryPosition struct {
		Code         string `json:"code"`
		Abbreviation string `json:"abbreviation"`
	} `json:"primaryPosition"`
	UseName       string `json:"useName"`
	BoxscoreName  string `json:"boxscoreName"`
	NickName      string `json:"nickName"`
	MLBDebutDate  string `json:"mlbDebutDate"`
	NameFirstLast string `json:"nameFirstLast"`
}

type paceResponse struct {
	Sports []paceSportResponse `json:"sports"`
}

type paceSportResponse struct {
	HitsPer9Inn             float64 `json:"hitsPer9Inn"`
	RunsPer9Inn             float64 `json:"runsPer9Inn"`
	PitchesPer9Inn          float64 `json:"pitchesPer9Inn"`
	PlateAppearancesPer9Inn float64 `json:"plateAppearancesPer9Inn"`
	HitsPerGame             float64 `json:"hitsPerGame"`
	RunsPerGame             float64 `json:"runsPerGame"`
	InningsPlayedPerGame    float64 `json:"inningsPlayedPerGame"`
	PitchesPerGame          float64 `json:"pitchesPerGame"`
	PitchersPerGame         float64 `json:"pitchersPerGame"`
	PlateAppearancesPerGame float64 `json:"plateAppearancesPerGame"`
	TotalGameTime           string  `json:"totalGameTime"`
	TotalInningsPlayed      float64 `json:"totalInningsPlayed"`
	TotalHits               int     `json:"totalHits"`
	TotalRuns               int     `json:"totalRuns"`
	TotalPlateAppearances   int     `json:"totalPlateAppearances"`
	TotalPitchers           int     `json:"totalPitchers"`
	TotalPitches            int     `json:"totalPitches"`
	TotalGames              int     `json:"totalGames"`
	TotalExtraInnGames      int     `json:"totalExtraInnGames"`
	TimePerGame             string  `json:"timePerGame"`
	TimePerPitch            string  `json:"timePerPitch"`
	TimePerHit              string  `json:"timePerHit"`
	TimePerRun              string  `json:"timePerRun"`
	TimePerPlateAppearance  string  `json:"timePerPlateAppearance"`
	TimePer9Inn             string  `json:"timePer9Inn"`
}
