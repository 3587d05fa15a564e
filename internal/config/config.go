// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDB           = "STRENGTHMAP_DB"
	EnvAddr         = "STRENGTHMAP_ADDR"
	EnvSnapshotKeep = "STRENGTHMAP_SNAPSHOT_KEEP"
	EnvLogLevel     = "STRENGTHMAP_LOG_LEVEL"
	EnvLogFormat    = "STRENGTHMAP_LOG_FORMAT"
	EnvGinMode      = "STRENGTHMAP_GIN_MODE"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string

	// Addr is the listen address for the HTTP API.
	Addr string

	// SnapshotKeep is how many history backups are retained.
	SnapshotKeep int

	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string
}

// DefaultConfig returns a Config with defaults for every field.
func DefaultConfig() Config {
	return Config{
		Addr:         "127.0.0.1:8080",
		SnapshotKeep: 10,
		LogLevel:     "warn",
		LogFormat:    "text",
		GinMode:      "release",
	}
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = getEnv(EnvDB, cfg.DBPath)
	cfg.Addr = getEnv(EnvAddr, cfg.Addr)
	cfg.LogLevel = strings.ToLower(getEnv(EnvLogLevel, cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv(EnvLogFormat, cfg.LogFormat))
	cfg.GinMode = getEnv(EnvGinMode, cfg.GinMode)

	if v := os.Getenv(EnvSnapshotKeep); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSnapshotKeep, err)
		}
		cfg.SnapshotKeep = n
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode: %q", c.GinMode)
	}
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvSnapshotKeep, c.SnapshotKeep)
	}
	if c.Addr == "" {
		return fmt.Errorf("%s must not be empty", EnvAddr)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
