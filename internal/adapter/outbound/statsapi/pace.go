package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"mlb-statsapi-mcp/internal/domain"
)

// GamePace fetches the league pace-of-play report for one season. Seasons
// with no data are an error.
func (c *Client) GamePace(ctx context.Context, season int) (domain.PaceStats, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("sportId", sportID)

	var resp paceResponse
	if err := c.get(ctx, epGamePace, q, &resp); err != nil {
		return domain.PaceStats{}, err
	}
	if len(resp.Sports) == 0 {
		return domain.PaceStats{}, fmt.Errorf("no pace data for season %d", season)
	}
	return mapPace(season, resp.Sports[0]), nil
}
