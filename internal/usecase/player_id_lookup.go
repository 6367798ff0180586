package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mlb-statsapi-mcp/internal/domain"
)

// PlayerIDLookupUseCase searches the player-id register by name.
type PlayerIDLookupUseCase struct {
	source PlayerIDSource
	logger *slog.Logger
}

// NewPlayerIDLookupUseCase creates a new PlayerIDLookupUseCase.
func NewPlayerIDLookupUseCase(source PlayerIDSource, logger *slog.Logger) *PlayerIDLookupUseCase {
	return &PlayerIDLookupUseCase{
		source: source,
		logger: logger.With("usecase", "PlayerIDLookup"),
	}
}

// Execute picks the search mode from which names are present: both names
// mean an exact lookup, a single name means a fuzzy lookup with that name
// as the primary term (a lone first name included), and no names returns
// nil without consulting the register at all. The fuzzy argument is
// accepted for compatibility but the mode table above wins.
func (uc *PlayerIDLookupUseCase) Execute(ctx context.Context, last, first string, fuzzy bool) ([]domain.PlayerIDRecord, error) {
	var (
		records []domain.PlayerIDRecord
		err     error
	)
	switch {
	case last != "" && first != "":
		uc.logger.Info("Exact register lookup",
			slog.String("last", last),
			slog.String("first", first))
		records, err = uc.source.Lookup(ctx, last, first, false)
	case last != "":
		uc.logger.Info("Fuzzy register lookup", slog.String("last", last))
		records, err = uc.source.Lookup(ctx, last, "", true)
	case first != "":
		uc.logger.Info("Fuzzy register lookup", slog.String("first", first))
		records, err = uc.source.Lookup(ctx, first, "", true)
	default:
		uc.logger.Info("No name given, skipping register lookup")
		return nil, nil
	}
	if err != nil {
		uc.logger.Error("Register lookup failed", slog.Any("error", err))
		return nil, fmt.Errorf("looking up player ids: %w", err)
	}
	return records, nil
}
