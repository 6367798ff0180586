package test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-statsapi-mcp/internal/adapter/inbound/mcptools"
	"mlb-statsapi-mcp/internal/adapter/outbound/chadwick"
	"mlb-statsapi-mcp/internal/adapter/outbound/memrepo"
	"mlb-statsapi-mcp/internal/adapter/outbound/statsapi"
	"mlb-statsapi-mcp/internal/metrics"
	"mlb-statsapi-mcp/internal/usecase"
	"mlb-statsapi-mcp/pkg/shared/mcpjsonrpc"
)

// TestStdioRoundTrip drives the assembled MCP server over its stdio
// transport end to end: initialize, tools/list, then tool calls backed by a
// fake upstream stats service.
func TestStdioRoundTrip(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/teams":
			fmt.Fprint(w, `{"teams":[
				{"id":119,"name":"Los Angeles Dodgers","teamCode":"lan","fileCode":"la","teamName":"Dodgers","locationName":"Los Angeles","shortName":"LA Dodgers","abbreviation":"LAD"},
				{"id":147,"name":"New York Yankees","teamCode":"nya","fileCode":"nyy","teamName":"Yankees","locationName":"Bronx","shortName":"NY Yankees","abbreviation":"NYY"}
			]}`)
		case "/v1/gamePace":
			assert.Equal(t, "2008", r.URL.Query().Get("season"))
			fmt.Fprint(w, `{"sports":[{"timePerGame":"02:49:55","totalGames":2428,"runsPerGame":9.38}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	client, shutdown := startStdioServer(t, upstream.URL)
	defer shutdown()

	// --- initialize handshake ---
	resp := client.call(t, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "stdio-test", "version": "0.0.1"},
	})
	require.Nil(t, resp.Error)

	var initResult struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	decodeResult(t, resp, &initResult)
	assert.Equal(t, "mlb-statsapi-mcp", initResult.ServerInfo.Name)

	client.notify(t, "notifications/initialized")

	// --- tools/list ---
	resp = client.call(t, "tools/list", nil)
	require.Nil(t, resp.Error)

	var listed mcpjsonrpc.ListToolsResult
	decodeResult(t, resp, &listed)

	names := make([]string, 0, len(listed.Tools))
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"look_up_team",
		"get_daily_results",
		"get_mlb_schedule",
		"mlb_team_result",
		"player_id_lookup",
		"get_player_info",
		"get_game_highlights",
		"game_pace",
	}, names)

	// --- tools/call against the fake upstream ---
	t.Run("look_up_team", func(t *testing.T) {
		resp := client.call(t, "tools/call", mcpjsonrpc.CallToolParams{
			Name:      "look_up_team",
			Arguments: map[string]any{"team_name": "dodgers"},
		})
		require.Nil(t, resp.Error)

		var result mcpjsonrpc.CallToolResult
		decodeResult(t, resp, &result)
		require.False(t, result.IsError)
		require.Len(t, result.Content, 1)

		var team struct {
			ID           int    `json:"id"`
			Abbreviation string `json:"abbreviation"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &team))
		assert.Equal(t, 119, team.ID)
		assert.Equal(t, "LAD", team.Abbreviation)
	})

	t.Run("game_pace", func(t *testing.T) {
		resp := client.call(t, "tools/call", mcpjsonrpc.CallToolParams{
			Name:      "game_pace",
			Arguments: map[string]any{"season": 2008},
		})
		require.Nil(t, resp.Error)

		var result mcpjsonrpc.CallToolResult
		decodeResult(t, resp, &result)
		require.False(t, result.IsError)
		require.Len(t, result.Content, 1)

		var pace struct {
			Season      int    `json:"season"`
			TimePerGame string `json:"timePerGame"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &pace))
		assert.Equal(t, 2008, pace.Season)
		assert.Equal(t, "02:49:55", pace.TimePerGame)
	})

	t.Run("unknown team is a tool error", func(t *testing.T) {
		resp := client.call(t, "tools/call", mcpjsonrpc.CallToolParams{
			Name:      "look_up_team",
			Arguments: map[string]any{"team_name": "harlem globetrotters"},
		})
		require.Nil(t, resp.Error)

		var result mcpjsonrpc.CallToolResult
		decodeResult(t, resp, &result)
		assert.True(t, result.IsError)
	})
}

// stdioClient exchanges newline-delimited JSON-RPC messages with the server
// half of the pipe pair.
type stdioClient struct {
	enc     *json.Encoder
	scanner *bufio.Scanner
	nextID  int
}

func (c *stdioClient) call(t *testing.T, method string, params any) mcpjsonrpc.Response {
	t.Helper()

	c.nextID++
	err := c.enc.Encode(mcpjsonrpc.Request{
		Version: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID,
	})
	require.NoError(t, err)

	require.True(t, c.scanner.Scan(), "expected a response line, got none: %v", c.scanner.Err())

	var resp mcpjsonrpc.Response
	require.NoError(t, json.Unmarshal(c.scanner.Bytes(), &resp))
	assert.EqualValues(t, c.nextID, resp.ID)
	return resp
}

func (c *stdioClient) notify(t *testing.T, method string) {
	t.Helper()
	require.NoError(t, c.enc.Encode(mcpjsonrpc.Request{Version: "2.0", Method: method}))
}

// startStdioServer assembles the full server against the given upstream base
// URL and serves it over an in-memory pipe pair.
func startStdioServer(t *testing.T, upstreamURL string) (*stdioClient, func()) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder()

	statsClient := statsapi.New(statsapi.Config{
		BaseURL: upstreamURL,
		Logger:  logger,
		Metrics: recorder,
	})
	registerClient := chadwick.New(chadwick.Config{
		RegisterURL: upstreamURL + "/register/people.csv",
		Logger:      logger,
	})

	teams := usecase.NewLookupTeamUseCase(statsClient, logger)
	schedule := usecase.NewScheduleUseCase(statsClient, logger)
	binder := mcptools.NewBinder(mcptools.Deps{
		Teams:      teams,
		Schedule:   schedule,
		Daily:      usecase.NewDailyResultsUseCase(statsClient, logger),
		TeamResult: usecase.NewTeamResultUseCase(teams, schedule, statsClient, logger),
		PlayerIDs:  usecase.NewPlayerIDLookupUseCase(registerClient, logger),
		Players:    usecase.NewPlayerInfoUseCase(statsClient, logger),
		Highlights: usecase.NewHighlightsUseCase(statsClient, logger),
		Pace:       usecase.NewGamePaceUseCase(statsClient, logger),
		Catalog:    memrepo.NewInMemoryToolCatalog(logger),
		Logger:     logger,
		Metrics:    recorder,
	})

	mcpSrv := mcpGoServer.NewMCPServer("mlb-statsapi-mcp", "0.1.0")
	require.NoError(t, binder.Register(context.Background(), mcpSrv))

	serverReader, clientWriter := io.Pipe()
	clientReader, serverWriter := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = mcpGoServer.NewStdioServer(mcpSrv).Listen(ctx, serverReader, serverWriter)
	}()

	scanner := bufio.NewScanner(clientReader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	client := &stdioClient{
		enc:     json.NewEncoder(clientWriter),
		scanner: scanner,
	}
	shutdown := func() {
		cancel()
		_ = clientWriter.Close()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Log("stdio server did not stop in time")
		}
		_ = serverWriter.Close()
	}
	return client, shutdown
}

func decodeResult(t *testing.T, resp mcpjsonrpc.Response, out any) {
	t.Helper()
	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
