package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"mlb-statsapi-mcp/internal/domain"
)

// ScoringPlays fetches the scoring plays of one game in event order.
// An unknown game id is an error: the service returns an empty schedule
// rather than a 404.
func (c *Client) ScoringPlays(ctx context.Context, gameID int) ([]domain.ScoringPlay, error) {
	g, err := c.fetchGameHydrate(ctx, gameID, hydrateScoring)
	if err != nil {
		return nil, err
	}
	return mapScoringPlays(g.ScoringPlays), nil
}

// Highlights fetches the published video highlights of one game.
func (c *Client) Highlights(ctx context.Context, gameID int) ([]domain.Highlight, error) {
	g, err := c.fetchGameHydrate(ctx, gameID, hydrateHighlights)
	if err != nil {
		return nil, err
	}
	if g.Content == nil || g.Content.Highlights == nil || g.Content.Highlights.Highlights == nil {
		return []domain.Highlight{}, nil
	}
	return mapHighlights(g.Content.Highlights.Highlights.Items), nil
}

// fetchGameHydrate looks up a single game through the schedule endpoint,
// which is the only route that accepts hydration directives per game.
func (c *Client) fetchGameHydrate(ctx context.Context, gameID int, hydrate string) (gameResponse, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	q.Set("gamePk", strconv.Itoa(gameID))
	q.Set("hydrate", hydrate)

	var resp scheduleResponse
	if err := c.get(ctx, epSchedule, q, &resp); err != nil {
		return gameResponse{}, err
	}
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			if g.GamePk == gameID {
				return g, nil
			}
		}
	}
	return gameResponse{}, fmt.Errorf("game %d not found in schedule response", gameID)
}
