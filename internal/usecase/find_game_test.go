package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/usecase"
)

func TestFindGameByTeam(t *testing.T) {
	games := []domain.Game{
		{GameID: 1, HomeID: 110, AwayID: 111},
		{GameID: 2, HomeID: 119, AwayID: 137},
		{GameID: 3, HomeID: 137, AwayID: 119},
	}

	tests := []struct {
		name       string
		teamID     int
		wantGameID int
		wantFound  bool
	}{
		{name: "matches as home team", teamID: 110, wantGameID: 1, wantFound: true},
		{name: "matches as away team", teamID: 111, wantGameID: 1, wantFound: true},
		{name: "first match wins on repeat appearances", teamID: 119, wantGameID: 2, wantFound: true},
		{name: "absent team is not found", teamID: 147, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, found := usecase.FindGameByTeam(games, tt.teamID)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantGameID, game.GameID)
			} else {
				assert.Equal(t, domain.Game{}, game)
			}
		})
	}

	t.Run("empty list is not found", func(t *testing.T) {
		_, found := usecase.FindGameByTeam(nil, 119)
		assert.False(t, found)
	})
}
