package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// PlayerInfoUseCase searches the provider's player directory.
type PlayerInfoUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
}

// NewPlayerInfoUseCase creates a new PlayerInfoUseCase.
func NewPlayerInfoUseCase(provider StatsProvider, logger *slog.Logger) *PlayerInfoUseCase {
	return &PlayerInfoUseCase{
		provider: provider,
		logger:   logger.With("usecase", "PlayerInfo"),
	}
}

// Execute returns the directory entries matching the lookup value.
func (uc *PlayerInfoUseCase) Execute(ctx context.Context, lookupValue string) ([]domain.PlayerRecord, error) {
	uc.logger.Info("Looking up players", slog.String("value", lookupValue))
	players, err := uc.provider.LookupPlayers(ctx, lookupValue)
	if err != nil {
		uc.logger.Error("Player lookup failed", slog.Any("error", err))
		return nil, fmt.Errorf("looking up players %q: %w", lookupValue, err)
	}
	return players, nil
}
