// Package config loads server settings from defaults, an optional YAML file
// and environment variables, in that order of precedence.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/ratelimit"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/security"
)

const minSecretLength = 16

// Config is the full server configuration
type Config struct {
	Server    ServerConfig            `yaml:"server"`
	Storage   StorageConfig           `yaml:"storage"`
	Auth      AuthConfig              `yaml:"auth"`
	Redis     RedisConfig             `yaml:"redis"`
	Catalog   CatalogConfig           `yaml:"catalog"`
	Stats     StatsConfig             `yaml:"stats"`
	Log       LogConfig               `yaml:"log"`
	RateLimit ratelimit.Config        `yaml:"rate_limit"`
	Security  security.SecurityConfig `yaml:"security"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	GinMode         string        `yaml:"gin_mode"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	PublicURL       string        `yaml:"public_url"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	DataDir         string        `yaml:"data_dir"`
	RetentionDays   int           `yaml:"retention_days"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CatalogConfig struct {
	File string `yaml:"file"`
}

type StatsConfig struct {
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			GinMode:         "release",
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
			PublicURL:       "http://localhost:3000",
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:         "./data",
			RetentionDays:   90,
			CleanupInterval: 24 * time.Hour,
		},
		Auth: AuthConfig{
			SessionTTL: 24 * time.Hour,
		},
		Stats: StatsConfig{
			CacheTTL:        5 * time.Minute,
			RefreshInterval: 5 * time.Minute,
		},
		Log:       LogConfig{Level: "info"},
		RateLimit: ratelimit.DefaultConfig(),
		Security:  security.DefaultSecurityConfig(),
	}
}

// Load builds the configuration. path may be empty; when it is, CONFIG_FILE
// is consulted. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Warn("Config file not found, using defaults", "path", path)
		case err != nil:
			return nil, apperrors.NewConfigurationError("failed to read config file", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, apperrors.NewConfigurationError("failed to parse config file", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.GinMode = getEnvOrDefault("GIN_MODE", c.Server.GinMode)
	c.Server.PublicURL = getEnvOrDefault("PUBLIC_URL", c.Server.PublicURL)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	c.Storage.DataDir = getEnvOrDefault("DATA_DIR", c.Storage.DataDir)
	c.Auth.JWTSecret = getEnvOrDefault("JWT_SECRET", c.Auth.JWTSecret)
	c.Redis.Addr = getEnvOrDefault("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Redis.Password)
	c.Catalog.File = getEnvOrDefault("CATALOG_FILE", c.Catalog.File)
	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)

	issues := make(map[string]string)

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			issues["REDIS_DB"] = "must be an integer"
		}
		c.Redis.DB = n
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			issues["RETENTION_DAYS"] = "must be an integer"
		}
		c.Storage.RetentionDays = n
	}
	if v := os.Getenv("STATS_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			issues["STATS_CACHE_TTL"] = "must be a duration such as 5m"
		}
		c.Stats.CacheTTL = d
	}

	if len(issues) > 0 {
		return apperrors.NewValidationErrorWithMap("invalid environment configuration", issues)
	}
	return nil
}

// Validate rejects unusable values. In non-release modes a missing JWT secret
// is replaced with a random one so sessions work for local runs.
func (c *Config) Validate() error {
	issues := make(map[string]string)

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		issues["server.port"] = "must be a port number between 1 and 65535"
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		issues["server.gin_mode"] = "must be one of debug, release, test"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		issues["server.allowed_origins"] = "must list at least one origin"
	}
	for _, origin := range c.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			issues["server.allowed_origins"] = fmt.Sprintf("origin %q must start with http:// or https://", origin)
		}
	}
	if c.Storage.DataDir == "" {
		issues["storage.data_dir"] = "must not be empty"
	}
	if c.Storage.RetentionDays <= 0 {
		issues["storage.retention_days"] = "must be positive"
	}
	if c.Storage.CleanupInterval <= 0 {
		issues["storage.cleanup_interval"] = "must be positive"
	}
	if c.Stats.CacheTTL <= 0 {
		issues["stats.cache_ttl"] = "must be positive"
	}
	if c.Stats.RefreshInterval <= 0 {
		issues["stats.refresh_interval"] = "must be positive"
	}
	if c.Redis.DB < 0 {
		issues["redis.db"] = "must not be negative"
	}

	if c.Auth.JWTSecret == "" && c.Server.GinMode != "release" {
		c.Auth.JWTSecret = randomSecret()
		slog.Warn("JWT_SECRET not set, using an ephemeral secret")
	}
	if len(c.Auth.JWTSecret) < minSecretLength {
		issues["auth.jwt_secret"] = fmt.Sprintf("must be at least %d characters", minSecretLength)
	}

	if len(issues) > 0 {
		return apperrors.NewValidationErrorWithMap("invalid configuration", issues)
	}
	return nil
}

// Addr is the listen address
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}
