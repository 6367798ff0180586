package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/usecase"
)

func TestLookupTeamUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	dodgers := domain.Team{ID: 119, Name: "Los Angeles Dodgers", TeamName: "Dodgers"}
	angels := domain.Team{ID: 108, Name: "Los Angeles Angels", TeamName: "Angels"}
	providerErr := errors.New("connection refused")

	tests := []struct {
		name      string
		lookup    string
		mockSetup func(*MockStatsProvider)
		wantTeam  domain.Team
		wantErr   error
	}{
		{
			name:   "single match",
			lookup: "Dodgers",
			mockSetup: func(p *MockStatsProvider) {
				p.On("LookupActiveTeams", ctx, "Dodgers").Return([]domain.Team{dodgers}, nil).Once()
			},
			wantTeam: dodgers,
		},
		{
			name:   "multiple matches returns the first",
			lookup: "Los Angeles",
			mockSetup: func(p *MockStatsProvider) {
				p.On("LookupActiveTeams", ctx, "Los Angeles").Return([]domain.Team{angels, dodgers}, nil).Once()
			},
			wantTeam: angels,
		},
		{
			name:   "no match is an error",
			lookup: "Expos",
			mockSetup: func(p *MockStatsProvider) {
				p.On("LookupActiveTeams", ctx, "Expos").Return([]domain.Team{}, nil).Once()
			},
			wantErr: usecase.ErrNoTeams,
		},
		{
			name:   "provider error propagates",
			lookup: "Dodgers",
			mockSetup: func(p *MockStatsProvider) {
				p.On("LookupActiveTeams", ctx, "Dodgers").Return(nil, providerErr).Once()
			},
			wantErr: providerErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockStatsProvider)
			tt.mockSetup(provider)

			uc := usecase.NewLookupTeamUseCase(provider, testLogger())
			team, err := uc.Execute(ctx, tt.lookup)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.Team{}, team)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTeam, team)
			}
			provider.AssertExpectations(t)
		})
	}
}
