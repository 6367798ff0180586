package mcphttp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/usecase"
)

// Handlers serves the admin surface next to the MCP transport: liveness,
// the tool listing and the metrics scrape.
type Handlers struct {
	catalog        usecase.ToolCatalog
	metricsHandler http.Handler
	logger         *slog.Logger
}

// NewHandlers creates a new Handlers struct. metricsHandler may be nil
// when the metrics pipeline is disabled; the /metrics route is then not
// registered.
func NewHandlers(catalog usecase.ToolCatalog, metricsHandler http.Handler, logger *slog.Logger) *Handlers {
	return &Handlers{
		catalog:        catalog,
		metricsHandler: metricsHandler,
		logger:         logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /tools", h.handleListTools)
	if h.metricsHandler != nil {
		mux.Handle("GET /metrics", h.metricsHandler)
	}
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

// ToolListResponse is the JSON body of GET /tools.
type ToolListResponse struct {
	Tools []domain.Tool `json:"tools"`
	Count int           `json:"count"`
}

// handleListTools implements GET /tools from the catalog, in registration
// order.
func (h *Handlers) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list tools", slog.Any("error", err))
		http.Error(w, "Failed to list tools", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ToolListResponse{Tools: tools, Count: len(tools)}); err != nil {
		h.logger.Error("Failed to encode tool list", slog.Any("error", err))
	}
}
