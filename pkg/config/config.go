// Package config loads process settings from the environment. Server
// settings such as the listen address live in the database; Profile and
// BasePath, when set, are written there at startup.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds settings read from HOMEVIEW_* variables.
type Config struct {
	DBPath    string `env:"HOMEVIEW_DB" env-description:"Path to database file"`
	SeedFile  string `env:"HOMEVIEW_SEED" env-description:"YAML entity fixture imported at startup"`
	Profile   string `env:"HOMEVIEW_PROFILE" env-description:"Profile to activate, created if missing"`
	BasePath  string `env:"HOMEVIEW_BASE_PATH" env-description:"Path the pages are mounted under, e.g. /ui"`
	LogLevel  string `env:"HOMEVIEW_LOG_LEVEL" env-default:"info" env-description:"trace, debug, info, warn or error"`
	LogFormat string `env:"HOMEVIEW_LOG_FORMAT" env-default:"console" env-description:"console or json"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// Usage returns a description of the supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}

// SetupLogging configures the global zerolog logger to write to w.
func (c *Config) SetupLogging(w io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(level)

	switch strings.ToLower(c.LogFormat) {
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	case "console", "":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}
