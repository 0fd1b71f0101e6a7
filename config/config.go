package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	LogLevel  zerolog.Level
	LogFormat string
}

// New reads configuration from the environment, loading a .env file from
// the working directory first when one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		LogLevel:  zerolog.InfoLevel,
		LogFormat: FormatConsole,
	}

	if v := os.Getenv("FITSMETA_LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return nil, fmt.Errorf("config: FITSMETA_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv("FITSMETA_LOG_FORMAT"); v != "" {
		switch strings.ToLower(v) {
		case FormatConsole, FormatJSON:
			cfg.LogFormat = strings.ToLower(v)
		default:
			return nil, fmt.Errorf("config: FITSMETA_LOG_FORMAT must be %q or %q, got %q", FormatConsole, FormatJSON, v)
		}
	}

	return cfg, nil
}
