package statsapi

import (
	"context"
	"net/url"
	"strconv"

	"mlb-statsapi-mcp/internal/domain"
)

// Schedule fetches the games between start and end (inclusive,
// YYYY-MM-DD), flattened in provider order. A teamID of 0 fetches the
// whole league.
func (c *Client) Schedule(ctx context.Context, start, end string, teamID int) ([]domain.Game, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	q.Set("startDate", start)
	q.Set("endDate", end)
	if teamID != 0 {
		q.Set("teamId", strconv.Itoa(teamID))
	}
	q.Set("hydrate", hydrateSchedule)

	var resp scheduleResponse
	if err := c.get(ctx, epSchedule, q, &resp); err != nil {
		return nil, err
	}
	return mapSchedule(resp), nil
}
