package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"mlb-statsapi-mcp/configs"
	"mlb-statsapi-mcp/internal/adapter/inbound/mcphttp"
	"mlb-statsapi-mcp/internal/adapter/inbound/mcptools"
	"mlb-statsapi-mcp/internal/adapter/outbound/chadwick"
	"mlb-statsapi-mcp/internal/adapter/outbound/memrepo"
	"mlb-statsapi-mcp/internal/adapter/outbound/statsapi"
	"mlb-statsapi-mcp/internal/metrics"
	"mlb-statsapi-mcp/internal/usecase"
)

const (
	serviceName    = "mlb-statsapi-mcp"
	serviceVersion = "0.1.0"
)

func main() {
	var transport string
	flag.StringVar(&transport, "transport", "stdio", "Transport mode: stdio or sse")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// === Logging ===
	logLevel := cfg.ParsedLogLevel()
	var logger *slog.Logger

	if transport == "stdio" {
		// In stdio mode the protocol owns stdout, so log to a file to
		// keep the pipe clean.
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
		} else {
			logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
		}
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}

	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()), slog.String("transport", transport))

	// === OpenTelemetry Tracing ===
	shutdownOtel, err := initOtelProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// === Metrics ===
	recorder, metricsHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:     cfg.MetricsEnabled,
		ServiceName: serviceName,
	})
	if err != nil {
		logger.Error("Failed to initialize metrics.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics provider.", slog.Any("error", err))
		}
	}()

	// === MCP Server (mark3labs/mcp-go) ===
	mcpSrv := mcpGoServer.NewMCPServer(serviceName, serviceVersion)
	logger.Info("MCP server initialized.")

	// === Dependency Injection ===
	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	statsClient := statsapi.New(statsapi.Config{
		BaseURL:    cfg.StatsAPIBaseURL,
		UserAgent:  cfg.UserAgent,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    recorder,
	})
	registerClient := chadwick.New(chadwick.Config{
		RegisterURL: cfg.RegisterURL,
		HTTPClient:  httpClient,
		Logger:      logger,
		Metrics:     recorder,
	})
	catalog := memrepo.NewInMemoryToolCatalog(logger)

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
		Catalog:    catalog,
		Logger:     logger,
		Metrics:    recorder,
	})

	if err := binder.Register(ctx, mcpSrv); err != nil {
		logger.Error("Failed to register tools.", slog.Any("error", err))
		os.Exit(1)
	}

	// === Transport Mode Selection ===
	switch transport {
	case "stdio":
		logger.Info("Starting in STDIO mode")

		stdioServer := mcpGoServer.NewStdioServer(mcpSrv)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Error("STDIO server error", slog.Any("error", err))
			os.Exit(1)
		}

	case "sse":
		logger.Info("Starting in SSE mode")

		sseServer := mcpGoServer.NewSSEServer(mcpSrv, mcpGoServer.WithBaseURL("http://"+cfg.ListenAddr))

		adminMux := http.NewServeMux()
		mcphttp.NewHandlers(catalog, metricsHandler, logger).RegisterAdminRoutes(adminMux)
		adminServer := &http.Server{
			Addr:         cfg.AdminListenAddr,
			Handler:      adminMux,
			ReadTimeout:  cfg.ServerReadTimeout,
			WriteTimeout: cfg.ServerWriteTimeout,
		}
		go func() {
			logger.Info("Admin HTTP server starting.", slog.String("address", adminServer.Addr))
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Admin HTTP server failed to start.", slog.Any("error", err))
			}
		}()

		go func() {
			logger.Info("MCP SSE server starting.", slog.String("address", cfg.ListenAddr))
			if err := sseServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("MCP SSE server failed to start.", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		logger.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Admin HTTP server graceful shutdown failed.", slog.Any("error", err))
		}
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("MCP SSE server graceful shutdown failed.", slog.Any("error", err))
		}

		logger.Info("Servers shut down gracefully.")

	default:
		logger.Error("Invalid transport mode", slog.String("transport", transport))
		os.Exit(1)
	}
}

// initOtelProvider initializes the OpenTelemetry SDK and sets up the OTLP
// trace exporter. It returns a shutdown function to be called on exit.
// Tracing stays disabled unless an OTLP endpoint is configured.
func initOtelProvider(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	if cfg.OtelExporterOtlpEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, OpenTelemetry tracing disabled.")
		return func(context.Context) error { return nil }, nil
	}

	slog.Info("Initializing OTLP exporter.", slog.String("endpoint", cfg.OtelExporterOtlpEndpoint))

	grpcOpts := []grpc.DialOption{}
	if cfg.OtelExporterOtlpInsecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		slog.Warn("Using insecure connection for OTLP exporter.")
	}

	conn, err := grpc.NewClient(cfg.OtelExporterOtlpEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTLP endpoint: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("OpenTelemetry TracerProvider configured.")

	return func(ctx context.Context) error {
		providerErr := tp.Shutdown(ctx)
		connErr := conn.Close()
		return errors.Join(providerErr, connErr)
	}, nil
}
