package statsapi

import (
	"context"
	"net/url"
	"strconv"

	"mlb-statsapi-mcp/internal/domain"
)

// LookupPlayers fetches the sport's player directory for the current
// season and filters it by a case-insensitive substring match across the
// name, number, team and position fields.
func (c *Client) LookupPlayers(ctx context.Context, value string) ([]domain.PlayerRecord, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(c.now().Year()))

	var resp playersResponse
	if err := c.get(ctx, epPlayers, q, &resp); err != nil {
		return nil, err
	}
	return filterPlayers(resp.People, value), nil
}
