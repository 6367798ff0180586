package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mlb-statsapi-mcp/internal/domain"
)

// DailyResultsUseCase builds the league-wide results digest for one day.
type DailyResultsUseCase struct {
	provider StatsProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewDailyResultsUseCase creates a new DailyResultsUseCase.
func NewDailyResultsUseCase(provider StatsProvider, logger *slog.Logger) *DailyResultsUseCase {
	return &DailyResultsUseCase{
		provider: provider,
		logger:   logger.With("usecase", "DailyResults"),
		now:      time.Now,
	}
}

// Execute summarizes the completed games of one day, defaulting to today.
// Games the provider does not report as final are skipped; order is
// preserved. The result is empty, not nil, when nothing has finished.
func (uc *DailyResultsUseCase) Execute(ctx context.Context, date string) ([]domain.DailySummary, error) {
	date = resolveDate(date, uc.now)
	uc.logger.Info("Building daily results", slog.String("date", date))
	games, err := uc.provider.Schedule(ctx, date, date, 0)
	if err != nil {
		uc.logger.Error("Schedule fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("fetching schedule for %s: %w", date, err)
	}
	summaries := make([]domain.DailySummary, 0, len(games))
	for _, g := range games {
		if g.Status != domain.StatusFinal {
			continue
		}
		mvp := g.WinningPitcher
		if mvp == "" {
			mvp = "N/A"
		}
		summaries = append(summaries, domain.DailySummary{
			Date:        g.GameDate,
			HomeTeam:    g.HomeName,
			HomeScore:   g.HomeScore,
			AwayTeam:    g.AwayName,
			AwayScore:   g.AwayScore,
			WinningTeam: g.WinningTeam,
			LosingTeam:  g.LosingTeam,
			MVP:         mvp,
		})
	}
	uc.logger.Info("Built daily results",
		slog.Int("games", len(games)),
		slog.Int("final", len(summaries)))
	return summaries, nil
}
