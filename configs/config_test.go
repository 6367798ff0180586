package configs_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-statsapi-mcp/configs"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, ":8081", cfg.AdminListenAddr)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.OtelExporterOtlpInsecure)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.StatsAPIBaseURL)
	assert.Empty(t, cfg.RegisterURL)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
stats_api:
  base_url: https://statsapi.example.test/api
  user_agent: scoreboard-probe/1.0
register:
  url: https://mirror.example.test/people.csv
`)
	t.Setenv("MLBSTATS_CONFIG_FILE", path)

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://statsapi.example.test/api", cfg.StatsAPIBaseURL)
	assert.Equal(t, "scoreboard-probe/1.0", cfg.UserAgent)
	assert.Equal(t, "https://mirror.example.test/people.csv", cfg.RegisterURL)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
stats_api:
  base_url: https://statsapi.example.test/api
register:
  url: https://mirror.example.test/people.csv
`)
	t.Setenv("MLBSTATS_CONFIG_FILE", path)
	t.Setenv("MLBSTATS_STATS_API_BASE_URL", "https://override.example.test/api")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.test/api", cfg.StatsAPIBaseURL)
	assert.Equal(t, "https://mirror.example.test/people.csv", cfg.RegisterURL)
}

func TestLoadMissingFileErrors(t *testing.T) {
	t.Setenv("MLBSTATS_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := configs.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadMalformedFileErrors(t *testing.T) {
	t.Setenv("MLBSTATS_CONFIG_FILE", writeConfigFile(t, "{"))

	_, err := configs.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config file")
}

func TestParsedLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := configs.Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.ParsedLogLevel(), "level %q", tt.in)
	}
}
