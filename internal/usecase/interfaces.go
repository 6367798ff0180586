package usecase

import (
	"context"
	"errors"

	"mlb-statsapi-mcp/internal/domain"
)

// Standard errors returned by use cases and adapters.
var (
	// ErrNoTeams is returned when the provider's team directory has no
	// entry matching the requested name.
	ErrNoTeams = errors.New("no matching active team")

	// ErrToolNotFound is returned by catalog lookups for unknown names.
	ErrToolNotFound = errors.New("tool not found")
)

// StatsProvider is the outbound port to the MLB stats service. Every call
// is a live fetch; results are never cached between calls.
type StatsProvider interface {
	// LookupActiveTeams returns the active teams matching the given
	// name, in provider order.
	LookupActiveTeams(ctx context.Context, name string) ([]domain.Team, error)

	// Schedule returns the games between start and end (inclusive,
	// YYYY-MM-DD), flattened in provider order. A teamID of 0 applies no
	// team filter.
	Schedule(ctx context.Context, start, end string, teamID int) ([]domain.Game, error)

	// ScoringPlays returns the scoring plays of one game in event order.
	ScoringPlays(ctx context.Context, gameID int) ([]domain.ScoringPlay, error)

	// Highlights returns the published video highlights of one game.
	Highlights(ctx context.Context, gameID int) ([]domain.Highlight, error)

	// LookupPlayers returns the directory entries matching the lookup
	// value (a name, jersey number or position).
	LookupPlayers(ctx context.Context, value string) ([]domain.PlayerRecord, error)

	// GamePace returns the league pace-of-play report for a season.
	GamePace(ctx context.Context, season int) (domain.PaceStats, error)
}

// PlayerIDSource is the outbound port to the player-id register. The last
// argument is the primary search term; first narrows it when present.
// fuzzy selects closest-match search instead of exact equality.
type PlayerIDSource interface {
	Lookup(ctx context.Context, last, first string, fuzzy bool) ([]domain.PlayerIDRecord, error)
}

// ToolCatalog is the registration table for the tools this server
// exposes. It is populated once during startup and read-only afterwards.
type ToolCatalog interface {
	Save(ctx context.Context, tools []domain.Tool) error
	List(ctx context.Context) ([]domain.Tool, error)
	FindToolByName(ctx context.Context, name string) (*domain.Tool, error)
}
