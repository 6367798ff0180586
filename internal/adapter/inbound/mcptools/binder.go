package mcptools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/metrics"
	"mlb-statsapi-mcp/internal/usecase"
)

// Binder owns the fixed tool table: it declares every tool on the MCP
// server, records the table in the catalog, and applies each tool's error
// policy in its handler.
type Binder struct {
	teams      *usecase.LookupTeamUseCase
	schedule   *usecase.ScheduleUseCase
	daily      *usecase.DailyResultsUseCase
	teamResult *usecase.TeamResultUseCase
	playerIDs  *usecase.PlayerIDLookupUseCase
	players    *usecase.PlayerInfoUseCase
	highlights *usecase.HighlightsUseCase
	pace       *usecase.GamePaceUseCase
	catalog    usecase.ToolCatalog
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// Deps carries the use case behind each tool plus the catalog the admin
// listing reads from.
type Deps struct {
	Teams      *usecase.LookupTeamUseCase
	Schedule   *usecase.ScheduleUseCase
	Daily      *usecase.DailyResultsUseCase
	TeamResult *usecase.TeamResultUseCase
	PlayerIDs  *usecase.PlayerIDLookupUseCase
	Players    *usecase.PlayerInfoUseCase
	Highlights *usecase.HighlightsUseCase
	Pace       *usecase.GamePaceUseCase
	Catalog    usecase.ToolCatalog
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// NewBinder creates a Binder from its dependencies.
func NewBinder(deps Deps) *Binder {
	return &Binder{
		teams:      deps.Teams,
		schedule:   deps.Schedule,
		daily:      deps.Daily,
		teamResult: deps.TeamResult,
		playerIDs:  deps.PlayerIDs,
		players:    deps.Players,
		highlights: deps.Highlights,
		pace:       deps.Pace,
		catalog:    deps.Catalog,
		logger:     deps.Logger.With("component", "mcptools"),
		metrics:    deps.Metrics,
	}
}

type registration struct {
	def     domain.Tool
	handler server.ToolHandlerFunc
}

// Register declares every tool on the MCP server and saves the table to
// the catalog.
func (b *Binder) Register(ctx context.Context, s *server.MCPServer) error {
	regs := b.registrations()
	defs := make([]domain.Tool, 0, len(regs))
	for _, reg := range regs {
		s.AddTool(mcpToolFromDef(reg.def), b.instrumented(reg.def.Name, reg.handler))
		defs = append(defs, reg.def)
	}
	if err := b.catalog.Save(ctx, defs); err != nil {
		return fmt.Errorf("saving tool catalog: %w", err)
	}
	b.logger.Info("Registered tools", slog.Int("count", len(defs)))
	return nil
}

// instrumented wraps a handler to record the call count and latency per
// tool.
func (b *Binder) instrumented(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, req)
		outcome := metrics.OutcomeOK
		if err != nil || (result != nil && result.IsError) {
			outcome = metrics.OutcomeError
		}
		b.metrics.RecordToolCall(ctx, name, outcome, time.Since(start))
		return result, err
	}
}

// mcpToolFromDef translates a catalog descriptor into its protocol
// declaration.
func mcpToolFromDef(def domain.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		var propOpts []mcp.PropertyOption
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if p.Description != "" {
			propOpts = append(propOpts, mcp.Description(p.Description))
		}
		switch p.Type {
		case "number":
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}
