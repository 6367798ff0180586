package usecase_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"mlb-statsapi-mcp/internal/domain"
)

// testLogger writes test logs to stderr so failures carry context.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// MockStatsProvider is a mock implementation of the StatsProvider port.
type MockStatsProvider struct {
	mock.Mock
}

func (m *MockStatsProvider) LookupActiveTeams(ctx context.Context, name string) ([]domain.Team, error) {
	args := m.Called(ctx, name)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.Team), args.Error(1)
}

func (m *MockStatsProvider) Schedule(ctx context.Context, start, end string, teamID int) ([]domain.Game, error) {
	args := m.Called(ctx, start, end, teamID)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.Game), args.Error(1)
}

func (m *MockStatsProvider) ScoringPlays(ctx context.Context, gameID int) ([]domain.ScoringPlay, error) {
	args := m.Called(ctx, gameID)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.ScoringPlay), args.Error(1)
}

func (m *MockStatsProvider) Highlights(ctx context.Context, gameID int) ([]domain.Highlight, error) {
	args := m.Called(ctx, gameID)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.Highlight), args.Error(1)
}

func (m *MockStatsProvider) LookupPlayers(ctx context.Context, value string) ([]domain.PlayerRecord, error) {
	args := m.Called(ctx, value)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.PlayerRecord), args.Error(1)
}

func (m *MockStatsProvider) GamePace(ctx context.Context, season int) (domain.PaceStats, error) {
	args := m.Called(ctx, season)
	return args.Get(0).(domain.PaceStats), args.Error(1)
}

// MockPlayerIDSource is a mock implementation of the PlayerIDSource port.
type MockPlayerIDSource struct {
	mock.Mock
}

func (m *MockPlayerIDSource) Lookup(ctx context.Context, last, first string, fuzzy bool) ([]domain.PlayerIDRecord, error) {
	args := m.Called(ctx, last, first, fuzzy)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.PlayerIDRecord), args.Error(1)
}
