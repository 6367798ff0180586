// Command statsdump runs a single MLB stats operation from the command line
// and prints the result as JSON. It exercises the same use cases the MCP
// server exposes, which makes it handy for poking the upstream APIs without
// an MCP client in the loop.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"mlb-statsapi-mcp/configs"
	"mlb-statsapi-mcp/internal/adapter/outbound/chadwick"
	"mlb-statsapi-mcp/internal/adapter/outbound/statsapi"
	"mlb-statsapi-mcp/internal/usecase"
)

type options struct {
	tool    string
	team    string
	date    string
	start   string
	end     string
	teamID  int
	last    string
	first   string
	fuzzy   bool
	lookup  string
	gameID  int
	season  int
	timeout time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.tool, "tool", "", "Operation to run: look_up_team, get_daily_results, get_mlb_schedule, mlb_team_result, player_id_lookup, get_player_info, get_game_highlights, game_pace")
	flag.StringVar(&opts.team, "team", "", "Team name (look_up_team, mlb_team_result)")
	flag.StringVar(&opts.date, "date", "", "Date in YYYY-MM-DD format")
	flag.StringVar(&opts.start, "start", "", "Schedule range start in YYYY-MM-DD format")
	flag.StringVar(&opts.end, "end", "", "Schedule range end in YYYY-MM-DD format")
	flag.IntVar(&opts.teamID, "team-id", 0, "Team ID filter (get_mlb_schedule)")
	flag.StringVar(&opts.last, "last", "", "Player last name (player_id_lookup)")
	flag.StringVar(&opts.first, "first", "", "Player first name (player_id_lookup)")
	flag.BoolVar(&opts.fuzzy, "fuzzy", false, "Enable fuzzy name matching (player_id_lookup)")
	flag.StringVar(&opts.lookup, "lookup", "", "Player name or MLBAM ID (get_player_info)")
	flag.IntVar(&opts.gameID, "game", 0, "Game ID (get_game_highlights)")
	flag.IntVar(&opts.season, "season", 0, "Season year (game_pace)")
	flag.DurationVar(&opts.timeout, "timeout", 60*time.Second, "Overall timeout for the operation")
	flag.Parse()

	// Results go to stdout, so keep logging on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if opts.tool == "" {
		fmt.Fprintln(os.Stderr, "statsdump: -tool is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := configs.Load()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	statsClient := statsapi.New(statsapi.Config{
		BaseURL:    cfg.StatsAPIBaseURL,
		UserAgent:  cfg.UserAgent,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	registerClient := chadwick.New(chadwick.Config{
		RegisterURL: cfg.RegisterURL,
		HTTPClient:  httpClient,
		Logger:      logger,
	})

	result, err := run(ctx, opts, statsClient, registerClient, logger)
	if err != nil {
		logger.Error("Operation failed", slog.String("tool", opts.tool), slog.Any("error", err))
		os.Exit(1)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("Failed to encode result", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func run(ctx context.Context, opts options, statsClient *statsapi.Client, registerClient *chadwick.Client, logger *slog.Logger) (any, error) {
	teams := usecase.NewLookupTeamUseCase(statsClient, logger)
	schedule := usecase.NewScheduleUseCase(statsClient, logger)

	switch opts.tool {
	case "look_up_team":
		if opts.team == "" {
			return nil, fmt.Errorf("-team is required for %s", opts.tool)
		}
		return teams.Execute(ctx, opts.team)

	case "get_daily_results":
		return usecase.NewDailyResultsUseCase(statsClient, logger).Execute(ctx, opts.date)

	case "get_mlb_schedule":
		return schedule.Execute(ctx, opts.start, opts.end, opts.teamID)

	case "mlb_team_result":
		if opts.team == "" {
			return nil, fmt.Errorf("-team is required for %s", opts.tool)
		}
		return usecase.NewTeamResultUseCase(teams, schedule, statsClient, logger).Execute(ctx, opts.team, opts.date)

	case "player_id_lookup":
		return usecase.NewPlayerIDLookupUseCase(registerClient, logger).Execute(ctx, opts.last, opts.first, opts.fuzzy)

	case "get_player_info":
		if opts.lookup == "" {
			return nil, fmt.Errorf("-lookup is required for %s", opts.tool)
		}
		return usecase.NewPlayerInfoUseCase(statsClient, logger).Execute(ctx, opts.lookup)

	case "get_game_highlights":
		if opts.gameID == 0 {
			return nil, fmt.Errorf("-game is required for %s", opts.tool)
		}
		return usecase.NewHighlightsUseCase(statsClient, logger).Execute(ctx, opts.gameID)

	case "game_pace":
		if opts.season == 0 {
			return nil, fmt.Errorf("-season is required for %s", opts.tool)
		}
		return usecase.NewGamePaceUseCase(statsClient, logger).Execute(ctx, opts.season)

	default:
		return nil, fmt.Errorf("unknown tool %q", opts.tool)
	}
}
