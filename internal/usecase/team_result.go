package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// TeamResultUseCase resolves a team, finds its game on a given day and
// bundles the scoring plays and highlights of that game.
type TeamResultUseCase struct {
	teams    *LookupTeamUseCase
	schedule *ScheduleUseCase
	provider StatsProvider
	logger   *slog.Logger
}

// NewTeamResultUseCase creates a new TeamResultUseCase.
func NewTeamResultUseCase(teams *LookupTeamUseCase, schedule *ScheduleUseCase, provider StatsProvider, logger *slog.Logger) *TeamResultUseCase {
	return &TeamResultUseCase{
		teams:    teams,
		schedule: schedule,
		provider: provider,
		logger:   logger.With("usecase", "TeamResult"),
	}
}

// Execute returns nil with no error when the team has no game on the date;
// callers render that as an absent result. Team resolution happens first,
// so an unknown name fails before any schedule traffic. An empty date
// defaults to today inside the schedule fetch.
func (uc *TeamResultUseCase) Execute(ctx context.Context, teamName, date string) (*domain.GameResult, error) {
	team, err := uc.teams.Execute(ctx, teamName)
	if err != nil {
		return nil, err
	}
	games, err := uc.schedule.Execute(ctx, date, date, team.ID)
	if err != nil {
		return nil, err
	}
	game, ok := FindGameByTeam(games, team.ID)
	if !ok {
		uc.logger.Info("No game found for team",
			slog.String("team", team.Name),
			slog.String("date", date))
		return nil, nil
	}
	plays, err := uc.provider.ScoringPlays(ctx, game.GameID)
	if err != nil {
		uc.logger.Error("Scoring plays fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetching scoring plays for game %d: %w", game.GameID, err)
	}
	highlights, err := uc.provider.Highlights(ctx, game.GameID)
	if err != nil {
		uc.logger.Error("Highlights fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetching highlights for game %d: %w", game.GameID, err)
	}
	return &domain.GameResult{
		ScoringPlays:   plays,
		GameHighlights: highlights,
	}, nil
}
