package domain

// PaceStats is the league-wide pace-of-play report for one season. Field
// names mirror the provider's gamePace payload; duration fields are the
// provider's hh:mm:ss strings.
type PaceStats struct {
	Season int `json:"season"`

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

	TotalGameTime         string  `json:"totalGameTime,omitempty"`
	TotalInningsPlayed    float64 `json:"totalInningsPlayed"`
	TotalHits             int     `json:"totalHits"`
	TotalRuns             int     `json:"totalRuns"`
	TotalPlateAppearances int     `json:"totalPlateAppearances"`
	TotalPitchers         int     `json:"totalPitchers"`
	TotalPitches          int     `json:"totalPitches"`
	TotalGames            int     `json:"totalGames"`
	TotalExtraInnGames    int     `json:"totalExtraInnGames"`

	TimePerGame            string `json:"timePerGame,omitempty"`
	TimePerPitch           string `json:"timePerPitch,omitempty"`
	TimePerHit             string `json:"timePerHit,omitempty"`
	TimePerRun             string `json:"timePerRun,omitempty"`
	TimePerPlateAppearance string `json:"timePerPlateAppearance,omitempty"`
	TimePer9Inn            string `json:"timePer9Inn,omitempty"`
}
