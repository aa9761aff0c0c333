package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	Port            int
	GraphQLEndpoint string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	ProbeCron       string
	ProbeTimeout    time.Duration
	LogLevel        string
	GinMode         string
}

const (
	defaultPort            = 5000
	defaultGraphQLEndpoint = "https://leetcode.com/graphql"
	defaultTimeout         = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultProbeCron       = "@every 5m"
	defaultProbeTimeout    = 15 * time.Second
	defaultLogLevel        = "info"
	defaultGinMode         = "release"
)

// Load builds a Config from environment variables with sane defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := parsePort(getenvDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            port,
		GraphQLEndpoint: getenvDefault("LEETCODE_GRAPHQL_URL", defaultGraphQLEndpoint),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		ShutdownTimeout: parseDurationDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ProbeCron:       lookupDefault("PROBE_CRON", defaultProbeCron),
		ProbeTimeout:    parseDurationDefault("PROBE_TIMEOUT", defaultProbeTimeout),
		LogLevel:        getenvDefault("LOG_LEVEL", defaultLogLevel),
		GinMode:         getenvDefault("GIN_MODE", defaultGinMode),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of debug, release, test; got %q", cfg.GinMode)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SlogLevel maps LogLevel onto slog, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parsePort(val string) (int, error) {
	port, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("PORT must be numeric: %w", err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT out of range: %d", port)
	}
	return port, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// lookupDefault distinguishes an explicitly empty variable from an unset one.
func lookupDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
