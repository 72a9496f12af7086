package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataDir      string
	LogLevel     slog.Level
	IsProduction bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every key has a usable default, so a bare environment works.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DataDir = viper.GetString("DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
		log.Printf("Warning: DATA_DIR environment variable empty. Defaulting to %s\n", cfg.DataDir)
	}

	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		log.Printf("Warning: unknown LOG_LEVEL %q. Defaulting to info.\n", s)
		return slog.LevelInfo
	}
}
