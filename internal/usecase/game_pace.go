package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// GamePaceUseCase fetches the league pace-of-play report for a season.
type GamePaceUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
}

// NewGamePaceUseCase creates a new GamePaceUseCase.
func NewGamePaceUseCase(provider StatsProvider, logger *slog.Logger) *GamePaceUseCase {
	return &GamePaceUseCase{
		provider: provider,
		logger:   logger.With("usecase", "GamePace"),
	}
}

// Execute returns the pace report for the season.
func (uc *GamePaceUseCase) Execute(ctx context.Context, season int) (domain.PaceStats, error) {
	uc.logger.Info("Fetching game pace", slog.Int("season", season))
	pace, err := uc.provider.GamePace(ctx, season)
	if err != nil {
		uc.logger.Error("Game pace fetch failed", slog.Any("error", err))
		return domain.PaceStats{}, fmt.Errorf("fetching game pace for season %d: %w", season, err)
	}
	return pace, nil
}
