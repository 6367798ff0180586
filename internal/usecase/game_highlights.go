package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// HighlightsUseCase fetches the video highlights of one game.
type HighlightsUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
}

// NewHighlightsUseCase creates a new HighlightsUseCase.
func NewHighlightsUseCase(provider StatsProvider, logger *slog.Logger) *HighlightsUseCase {
	return &HighlightsUseCase{
		provider: provider,
		logger:   logger.With("usecase", "Highlights"),
	}
}

// Execute returns the published highlights of the game in provider order.
func (uc *HighlightsUseCase) Execute(ctx context.Context, gameID int) ([]domain.Highlight, error) {
	uc.logger.Info("Fetching highlights", slog.Int("game_id", gameID))
	highlights, err := uc.provider.Highlights(ctx, gameID)
	if err != nil {
		uc.logger.Error("Highlights fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetching highlights for game %d: %w", gameID, err)
	}
	return highlights, nil
}
