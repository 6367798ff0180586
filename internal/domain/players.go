package domain

// PlayerRecord is the provider's directory entry for one player.
type PlayerRecord struct {
	ID              int    `json:"id"`
	FullName        string `json:"fullName"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	PrimaryNumber   string `json:"primaryNumber,omitempty"`
	CurrentTeam     string `json:"currentTeam,omitempty"`
	PrimaryPosition string `json:"primaryPosition,omitempty"`
	UseName         string `json:"useName,omitempty"`
	BoxscoreName    string `json:"boxscoreName,omitempty"`
	NickName        string `json:"nickName,omitempty"`
	MLBDebutDate    string `json:"mlbDebutDate,omitempty"`
}

// PlayerIDRecord is one row of the cross-reference register mapping a
// player's name to their identifiers in the major stat systems. Numeric
// keys are -1 when the register has no identifier for that system.
type PlayerIDRecord struct {
	NameLast       string `json:"name_last"`
	NameFirst      string `json:"name_first"`
	KeyMLBAM       int    `json:"key_mlbam"`
	KeyRetro       string `json:"key_retro"`
	KeyBBRef       string `json:"key_bbref"`
	KeyFanGraphs   int    `json:"key_fangraphs"`
	MLBPlayedFirst int    `json:"mlb_played_first"`
	MLBPlayedLast  int    `json:"mlb_played_last"`
}
