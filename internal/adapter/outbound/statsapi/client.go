package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mlb-statsapi-mcp/internal/metrics"
)

// Config controls how the client reaches the MLB stats service.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	// Clock supplies the current time for season defaulting. Nil means
	// time.Now.
	Clock func() time.Time

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Client is a typed reader over the MLB stats REST service. Every call is
// a live fetch; nothing is cached between calls.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
	logger     *slog.Logger
	metrics    *metrics.Recorder
	tracer     trace.Tracer
}

// New constructs a Client with the provided configuration.
func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        now,
		logger:     logger.With("component", "statsapi"),
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer("statsapi"),
	}
}

// get issues one GET against the service and decodes the JSON body into
// out. Non-2xx responses become errors carrying a body excerpt.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	ctx, span := c.tracer.Start(ctx, "statsapi.get",
		trace.WithAttributes(attribute.String("endpoint", endpoint)))
	defer span.End()

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Fetching", slog.String("url", target))
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordProviderRequest(ctx, endpoint, 0, elapsed)
		return fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordProviderRequest(ctx, endpoint, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", endpoint, err)
	}
	return nil
}
