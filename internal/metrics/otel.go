package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled     bool
	ServiceName string
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter.
// It returns a Recorder, the Prometheus scrape handler, and a shutdown
// function. When disabled the Recorder keeps in-memory tallies only and
// the handler is nil.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "mlb-statsapi-mcp"
	}

	promReader, promHandler, err := prometheusComponents()
	if err != nil {
		return nil, nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(promReader),
		sdkmetric.WithResource(res),
	)

	inst, err := newInstruments(provider, cfg.ServiceName)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(inst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type instruments struct {
	toolCalls         metric.Int64Counter
	toolLatencyMs     metric.Float64Histogram
	providerCalls     metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
}

func newInstruments(provider metric.MeterProvider, serviceName string) (*instruments, error) {
	meter := provider.Meter(serviceName)

	toolCalls, err := meter.Int64Counter("tool_calls_total")
	if err != nil {
		return nil, err
	}
	toolLatency, err := meter.Float64Histogram("tool_call_duration_ms")
	if err != nil {
		return nil, err
	}
	providerCalls, err := meter.Int64Counter("provider_requests_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_request_duration_ms")
	if err != nil {
		return nil, err
	}

	return &instruments{
		toolCalls:         toolCalls,
		toolLatencyMs:     toolLatency,
		providerCalls:     providerCalls,
		providerLatencyMs: providerLatency,
	}, nil
}
