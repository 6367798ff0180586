package statsapi

import (
	"context"
	"net/url"

	"mlb-statsapi-mcp/internal/domain"
)

// LookupActiveTeams fetches the active team directory and filters it by a
// case-insensitive substring match across the common name fields. The
// matches come back in directory order.
func (c *Client) LookupActiveTeams(ctx context.Context, name string) ([]domain.Team, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	q.Set("activeStatus", "Y")

	var resp teamsResponse
	if err := c.get(ctx, epTeams, q, &resp); err != nil {
		return nil, err
	}
	return filterTeams(resp.Teams, name), nil
}
