package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mlb-statsapi-mcp/internal/domain"
)

// ScheduleUseCase fetches the games of a date window, optionally filtered
// to one team.
type ScheduleUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewScheduleUseCase creates a new ScheduleUseCase.
func NewScheduleUseCase(provider StatsProvider, logger *slog.Logger) *ScheduleUseCase {
	return &ScheduleUseCase{
		provider: provider,
		logger:   logger.With("usecase", "Schedule"),
		now:      time.Now,
	}
}

// Execute returns the games between start and end. Empty bounds default,
// independently, to today at the moment of the call. A teamID of 0 means
// the whole league. Results are returned in provider order, unpaginated.
func (uc *ScheduleUseCase) Execute(ctx context.Context, start, end string, teamID int) ([]domain.Game, error) {
	start = resolveDate(start, uc.now)
	end = resolveDate(end, uc.now)
	uc.logger.Info("Fetching schedule",
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("team_id", teamID))
	games, err := uc.provider.Schedule(ctx, start, end, teamID)
	if err != nil {
		uc.logger.Error("Schedule fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetching schedule %s..%s: %w", start, end, err)
	}
	return games, nil
}
