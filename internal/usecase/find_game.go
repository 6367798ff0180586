package usecase

import "mlb-statsapi-mcp/internal/domain"

// FindGameByTeam returns the first game in games where the team appears on
// either side of the matchup, preserving provider order. The second bool
// is false when the team has no game in the list; that is an expected
// outcome, not an error.
//
// On a doubleheader day only the first listed game is reachable through
// this lookup.
func FindGameByTeam(games []domain.Game, teamID int) (domain.Game, bool) {
	for _, g := range games {
		if g.HomeID == teamID || g.AwayID == teamID {
			return g, true
		}
	}
	return domain.Game{}, false
}
