package chadwick

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/metrics"
)

const (
	// DefaultRegisterURL is the published location of the Chadwick Bureau
	// people register.
	DefaultRegisterURL = "https://raw.githubusercontent.com/chadwickbureau/register/master/data/people.csv"

	defaultHTTPTimeout = 60 * time.Second
)

// Config controls how the client reaches the register.
type Config struct {
	RegisterURL string
	HTTPClient  *http.Client
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client resolves player identifiers from the Chadwick Bureau register.
// The register CSV is downloaded fresh on every lookup; nothing is cached
// between calls.
type Client struct {
	registerURL string
	httpClient  httpDoer
	logger      *slog.Logger
	metrics     *metrics.Recorder
	tracer      trace.Tracer
}

// New constructs a Client with the provided configuration.
func New(cfg Config) *Client {
	registerURL := cfg.RegisterURL
	if registerURL == "" {
		registerURL = DefaultRegisterURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		registerURL: registerURL,
		httpClient:  doer,
		logger:      logger.With("component", "chadwick"),
		metrics:     cfg.Metrics,
		tracer:      otel.Tracer("chadwick"),
	}
}

// Lookup searches the register by name. With fuzzy unset both names must
// match exactly. With fuzzy set the search keys on last alone: exact
// last-name hits win outright, otherwise the closest register names are
// returned. A lookup with no matches returns nil.
func (c *Client) Lookup(ctx context.Context, last, first string, fuzzy bool) ([]domain.PlayerIDRecord, error) {
	ctx, span := c.tracer.Start(ctx, "chadwick.lookup",
		trace.WithAttributes(attribute.Bool("fuzzy", fuzzy)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.registerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building register request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	c.logger.Debug("Downloading register", slog.String("url", c.registerURL))
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordProviderRequest(ctx, "register", 0, elapsed)
		return nil, fmt.Errorf("downloading register: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RecordProviderRequest(ctx, "register", resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("register: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	records, err := searchRegister(resp.Body, last, first, fuzzy)
	if err != nil {
		return nil, fmt.Errorf("reading register: %w", err)
	}
	c.logger.Debug("Register searched",
		slog.String("last", last),
		slog.Bool("fuzzy", fuzzy),
		slog.Int("matches", len(records)),
		slog.Duration("elapsed", elapsed))
	return records, nil
}
