// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/olympiad/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string

	// RequestTimeout bounds the database work of one request. Zero disables it.
	RequestTimeout time.Duration
}

// DefaultRequestTimeout applies when neither -request-timeout nor
// REQUEST_TIMEOUT is set
const DefaultRequestTimeout = 10 * time.Second

// ParseFlags reads CLI flags, falling back to environment variables.
// Values from a .env file are loaded into the environment first but never
// override variables that are already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	flags := flag.NewFlagSet("olympiad", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (json or text)")
	flags.StringVar(&envFile, "env", ".env", "Path to a .env file")
	timeout := flags.String("request-timeout", "", "Per-request database timeout, e.g. 5s (0 disables)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypePostgres
		}
	}
	if cfg.DatabaseType != db.TypePostgres && cfg.DatabaseType != db.TypeSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "json")
	}

	rawTimeout := *timeout
	if rawTimeout == "" {
		rawTimeout = os.Getenv("REQUEST_TIMEOUT")
	}
	if rawTimeout == "" {
		cfg.RequestTimeout = DefaultRequestTimeout
	} else {
		d, err := time.ParseDuration(rawTimeout)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid request timeout %q", rawTimeout)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// SlogLevel converts the configured level name, defaulting to info
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
