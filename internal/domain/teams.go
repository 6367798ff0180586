package domain

// Team is one franchise as returned by the provider's team directory.
// Field names mirror the provider payload so a resolved team can be
// returned to callers unchanged.
type Team struct {
	// ID is the provider's team identifier, used to filter schedules.
	ID int `json:"id"`

	// Name is the full name, e.g. "Los Angeles Dodgers".
	Name string `json:"name"`

	TeamCode     string `json:"teamCode,omitempty"`
	FileCode     string `json:"fileCode,omitempty"`
	TeamName     string `json:"teamName,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	ShortName    string `json:"shortName,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}
