// Package config loads planner settings from the environment.
//
// Values come from PLANNER_* environment variables, optionally seeded from a
// .env file. Command-line flags in main override whatever is loaded here.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidFormat is returned for an output format other than text, json or csv
	ErrInvalidFormat = errors.New("invalid output format")
)

// Config holds planner settings.
type Config struct {
	Format      string `env:"PLANNER_FORMAT" envDefault:"text"`
	LogLevel    string `env:"PLANNER_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"PLANNER_LOG_FORMAT" envDefault:"text"`
	MetricsAddr string `env:"PLANNER_METRICS_ADDR"`
	PushURL     string `env:"PLANNER_PUSH_URL"`
	PushJob     string `env:"PLANNER_PUSH_JOB" envDefault:"callcenter_planner"`
}

// Load reads the given env files (or ./.env if it exists when none are given)
// and parses the environment into a Config.
// Variables already set in the environment win over values from files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateFormat checks that format is one of text, json or csv.
func ValidateFormat(format string) error {
	switch format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("%w: must be one of text, json, csv (got: %s)", ErrInvalidFormat, format)
	}
}
