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

func TestGamePaceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the season report", func(t *testing.T) {
		pace := domain.PaceStats{Season: 2024, RunsPerGame: 8.76, TimePerGame: "02:36:12"}
		provider := new(MockStatsProvider)
		provider.On("GamePace", ctx, 2024).Return(pace, nil).Once()

		uc := usecase.NewGamePaceUseCase(provider, testLogger())
		got, err := uc.Execute(ctx, 2024)

		require.NoError(t, err)
		assert.Equal(t, pace, got)
		provider.AssertExpectations(t)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		providerErr := errors.New("no pace data for season 1875")
		provider := new(MockStatsProvider)
		provider.On("GamePace", ctx, 1875).Return(domain.PaceStats{}, providerErr).Once()

		uc := usecase.NewGamePaceUseCase(provider, testLogger())
		got, err := uc.Execute(ctx, 1875)

		require.Error(t, err)
		assert.ErrorIs(t, err, providerErr)
		assert.Equal(t, domain.PaceStats{}, got)
		provider.AssertExpectations(t)
	})
}
