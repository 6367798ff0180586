package mcptools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"mlb-statsapi-mcp/internal/domain"
)

// registrations returns the tool table in registration order. Fail-fast
// tools surface provider errors as error results; best-effort tools
// degrade to a null result with a diagnostic log line.
func (b *Binder) registrations() []registration {
	return []registration{
		{
			def: domain.Tool{
				Name:        "look_up_team",
				Description: "Look up an MLB team by name and return its ID, abbreviation and other details.",
				Params: []domain.ToolParam{
					{Name: "team_name", Type: "string", Description: `Name of the MLB team (e.g. "Los Angeles Dodgers").`, Required: true},
				},
			},
			handler: b.handleLookUpTeam,
		},
		{
			def: domain.Tool{
				Name:        "get_daily_results",
				Description: "Fetch final MLB game results for a given date (defaults to today).",
				Params: []domain.ToolParam{
					{Name: "date", Type: "string", Description: "Date to fetch results for (YYYY-MM-DD). Defaults to today."},
				},
			},
			handler: b.handleDailyResults,
		},
		{
			def: domain.Tool{
				Name:        "get_mlb_schedule",
				Description: "Retrieve the MLB game schedule for a date range, optionally for one team.",
				Params: []domain.ToolParam{
					{Name: "start_date", Type: "string", Description: "Start of the range (YYYY-MM-DD). Defaults to today."},
					{Name: "end_date", Type: "string", Description: "End of the range (YYYY-MM-DD). Defaults to today."},
					{Name: "team_id", Type: "number", Description: "Team ID to filter by. Omit for all teams."},
				},
			},
			handler: b.handleSchedule,
		},
		{
			def: domain.Tool{
				Name:        "mlb_team_result",
				Description: "Retrieve the scoring plays and video highlights of a team's game on a date (defaults to today). Returns null when the team has no game that day.",
				Params: []domain.ToolParam{
					{Name: "team_name", Type: "string", Description: `Name of the MLB team (e.g. "Los Angeles Dodgers").`, Required: true},
					{Name: "date", Type: "string", Description: "Game date (YYYY-MM-DD). Defaults to today."},
				},
			},
			handler: b.handleTeamResult,
		},
		{
			def: domain.Tool{
				Name:        "player_id_lookup",
				Description: "Look up a player's identifiers across stat systems by last name, first name and fuzzy matching.",
				Params: []domain.ToolParam{
					{Name: "last_name", Type: "string", Description: "Player's last name."},
					{Name: "first_name", Type: "string", Description: "Player's first name."},
					{Name: "fuzzy", Type: "boolean", Description: "Tolerate spelling variation in the name."},
				},
			},
			handler: b.handlePlayerIDLookup,
		},
		{
			def: domain.Tool{
				Name:        "get_player_info",
				Description: "Retrieve player directory information (name, team, position) for a lookup value.",
				Params: []domain.ToolParam{
					{Name: "lookup_value", Type: "string", Description: "Name, jersey number or position to search for.", Required: true},
				},
			},
			handler: b.handlePlayerInfo,
		},
		{
			def: domain.Tool{
				Name:        "get_game_highlights",
				Description: "Retrieve the video highlights published for a game.",
				Params: []domain.ToolParam{
					{Name: "game_id", Type: "number", Description: "ID of the game.", Required: true},
				},
			},
			handler: b.handleGameHighlights,
		},
		{
			def: domain.Tool{
				Name:        "game_pace",
				Description: "Retrieve league pace-of-play statistics for a season (game times, pitches per game, and so on).",
				Params: []domain.ToolParam{
					{Name: "season", Type: "number", Description: "Season year (e.g. 2024).", Required: true},
				},
			},
			handler: b.handleGamePace,
		},
	}
}

func (b *Binder) handleLookUpTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	team, err := b.teams.Execute(ctx, strArg(args, "team_name"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(team)
}

func (b *Binder) handleDailyResults(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	results, err := b.daily.Execute(ctx, strArg(args, "date"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(results)
}

func (b *Binder) handleSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	games, err := b.schedule.Execute(ctx, strArg(args, "start_date"), strArg(args, "end_date"), intArg(args, "team_id"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(games)
}

func (b *Binder) handleTeamResult(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	result, err := b.teamResult.Execute(ctx, strArg(args, "team_name"), strArg(args, "date"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// A nil result means no game that day; it renders as null, not an
	// error.
	return resultJSON(result)
}

func (b *Binder) handlePlayerIDLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	records, err := b.playerIDs.Execute(ctx, strArg(args, "last_name"), strArg(args, "first_name"), boolArg(args, "fuzzy"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(records)
}

func (b *Binder) handlePlayerInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	players, err := b.players.Execute(ctx, strArg(args, "lookup_value"))
	return b.bestEffort("get_player_info", players, err)
}

func (b *Binder) handleGameHighlights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	highlights, err := b.highlights.Execute(ctx, intArg(args, "game_id"))
	return b.bestEffort("get_game_highlights", highlights, err)
}

func (b *Binder) handleGamePace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(req)
	pace, err := b.pace.Execute(ctx, intArg(args, "season"))
	return b.bestEffort("game_pace", pace, err)
}

// bestEffort converts a failed lookup into a null result plus a
// diagnostic log line instead of surfacing the error to the caller.
func (b *Binder) bestEffort(tool string, v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		b.logger.Error("Tool degraded to null result", slog.String("tool", tool), slog.Any("error", err))
		return mcp.NewToolResultText("null"), nil
	}
	return resultJSON(v)
}
