package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/target/finance-web/config"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	return NewLogger(false)
}

// NewLogger builds the JSON logger; debug lowers the level for request tracing.
func NewLogger(debug bool) *slog.Logger {
	return NewLoggerTo(os.Stdout, debug)
}

// NewLoggerTo is NewLogger writing to w.
func NewLoggerTo(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return config.AppConfig{}, err
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadAPIConfig loads only the FINANCE_API_* settings, for tools that talk to
// the backend without serving the frontend.
func LoadAPIConfig() (config.APIConfig, error) {
	if err := loadDotEnv(); err != nil {
		return config.APIConfig{}, err
	}

	var cfg config.APIConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FINANCE_API_"}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads .env if it exists (development).
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}
