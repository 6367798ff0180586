package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// LookupTeamUseCase resolves a free-form team name to a single team.
type LookupTeamUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
}

// NewLookupTeamUseCase creates a new LookupTeamUseCase.
func NewLookupTeamUseCase(provider StatsProvider, logger *slog.Logger) *LookupTeamUseCase {
	return &LookupTeamUseCase{
		provider: provider,
		logger:   logger.With("usecase", "LookupTeam"),
	}
}

// Execute returns the first active team matching name. An empty provider
// result is an error, not an empty value: callers chain on the resolved
// team and must never see a zero Team.
func (uc *LookupTeamUseCase) Execute(ctx context.Context, name string) (domain.Team, error) {
	uc.logger.Info("Looking up team", slog.String("name", name))
	teams, err := uc.provider.LookupActiveTeams(ctx, name)
	if err != nil {
		uc.logger.Error("Team lookup failed", slog.Any("error", err))
		return domain.Team{}, fmt.Errorf("looking up team %q: %w", name, err)
	}
	if len(teams) == 0 {
		uc.logger.Warn("No team matched", slog.String("name", name))
		return domain.Team{}, fmt.Errorf("%w: %q", ErrNoTeams, name)
	}
	return teams[0], nil
}
