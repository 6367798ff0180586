package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the YAML configuration
// file. The file only tunes provider endpoints; everything else is
// environment-driven.
type FileConfig struct {
	StatsAPI struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"stats_api"`
	Register struct {
		URL string `yaml:"url"`
	} `yaml:"register"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Fields are loaded from environment variables
// with the prefix "MLBSTATS_", overriding file settings.
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Provider endpoints, file-configurable. Empty values fall back to
	// the adapters' built-in defaults.
	StatsAPIBaseURL string `envconfig:"STATS_API_BASE_URL"`
	UserAgent       string `envconfig:"USER_AGENT"`
	RegisterURL     string `envconfig:"REGISTER_URL"`

	// Environment-only fields.
	ListenAddr         string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr    string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	HTTPClientTimeout  time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	ServerReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
	ServerWriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string `envconfig:"LOG_FILE" default:"/tmp/mlb-statsapi-mcp.log"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration first from environment variables (to get the
// file path), then from the YAML file if one is configured, and finally
// merges/overrides with environment variables again so env always wins.
func Load() (*Config, error) {
	var initialCfg Config
	if err := envconfig.Process("mlbstats", &initialCfg); err != nil {
		return nil, fmt.Errorf("failed to process initial environment variables: %w", err)
	}

	fileCfg := FileConfig{}
	if initialCfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(initialCfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		slog.Info("Loaded configuration from file.", "path", initialCfg.ConfigFilePath)
	} else {
		slog.Debug("No config file path specified (MLBSTATS_CONFIG_FILE), using defaults/env vars only.")
	}

	// Start from the env snapshot, let the file fill endpoint fields,
	// then process env again so variables override file values.
	finalCfg := initialCfg
	if fileCfg.StatsAPI.BaseURL != "" {
		finalCfg.StatsAPIBaseURL = fileCfg.StatsAPI.BaseURL
	}
	if fileCfg.StatsAPI.UserAgent != "" {
		finalCfg.UserAgent = fileCfg.StatsAPI.UserAgent
	}
	if fileCfg.Register.URL != "" {
		finalCfg.RegisterURL = fileCfg.Register.URL
	}

	if err := envconfig.Process("mlbstats", &finalCfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	return &finalCfg, nil
}
