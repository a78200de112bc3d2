package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
)

const testSecret = "0123456789abcdef0123"

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 90, cfg.Storage.RetentionDays)
	assert.Equal(t, 5*time.Minute, cfg.Stats.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimit.IPLimit)
	assert.Equal(t, 100, cfg.Security.MaxAnswers)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
server:
  port: "9090"
  gin_mode: debug
  allowed_origins: ["https://a.example"]
storage:
  retention_days: 30
stats:
  cache_ttl: 90s
rate_limit:
  ip_limit_per_min: 10
auth:
  jwt_secret: from-file-secret-value
`)

	t.Setenv("PORT", "7070")
	t.Setenv("ALLOWED_ORIGINS", "https://b.example, https://c.example")
	t.Setenv("STATS_CACHE_TTL", "2m")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30, cfg.Storage.RetentionDays)
	assert.Equal(t, 2*time.Minute, cfg.Stats.CacheTTL)
	assert.Equal(t, 10, cfg.RateLimit.IPLimit)
	assert.Equal(t, "from-file-secret-value", cfg.Auth.JWTSecret)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		file  string
		field string
	}{
		{"bad yaml", nil, "server: [", ""},
		{"bad redis db", map[string]string{"REDIS_DB": "one"}, "", "REDIS_DB"},
		{"bad ttl", map[string]string{"STATS_CACHE_TTL": "soon"}, "", "STATS_CACHE_TTL"},
		{"bad port", map[string]string{"PORT": "99999"}, "", "server.port"},
		{"bad retention", map[string]string{"RETENTION_DAYS": "0"}, "", "storage.retention_days"},
		{"bad origin", map[string]string{"ALLOWED_ORIGINS": "example.com"}, "", "server.allowed_origins"},
		{"zero refresh", nil, "stats:\n  refresh_interval: 0s\n", "stats.refresh_interval"},
		{"short secret", map[string]string{"JWT_SECRET": "short"}, "", "auth.jwt_secret"},
		{"release without secret", map[string]string{"JWT_SECRET": "", "GIN_MODE": "release"}, "", "auth.jwt_secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testSecret)
			t.Setenv("CONFIG_FILE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := Load(path)
			require.Error(t, err)

			if tt.field != "" {
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Contains(t, appErr.Fields, tt.field)
			}
		})
	}
}

func TestValidate_DebugGeneratesSecret(t *testing.T) {
	cfg := Default()
	cfg.Server.GinMode = "debug"

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Auth.JWTSecret, 64)
}
