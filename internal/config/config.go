// Package config loads tripplanner settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is where the planning service listens in local development.
	DefaultAPIURL = "http://localhost:8000"
	// DefaultLogFileName is created under the user cache dir when no log file is set.
	DefaultLogFileName = "tripplanner.log"
)

// Config holds runtime settings. Field tags name the environment variables.
type Config struct {
	APIURL         string        `env:"TRIPPLANNER_API_URL" envDefault:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"TRIPPLANNER_REQUEST_TIMEOUT" envDefault:"120s"`

	LogFile   string `env:"TRIPPLANNER_LOG_FILE"`
	LogFormat string `env:"TRIPPLANNER_LOG_FORMAT" envDefault:"text"` // text, JSON
	Debug     string `env:"TRIPPLANNER_DEBUG" envDefault:"NO"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"tripplanner"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is not an error; the returned warning describes it.
func Load() (Config, string, error) {
	var warning string
	if err := godotenv.Load(); err != nil {
		warning = fmt.Sprintf("cannot load .env file: %v, using environment variables", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, warning, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, warning, err
	}
	return cfg, warning, nil
}

// Validate checks values env.Parse cannot check on its own.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("TRIPPLANNER_API_URL must not be empty")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("TRIPPLANNER_API_URL %q must start with http:// or https://", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("TRIPPLANNER_REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// IsDebug reports whether debug logging was requested.
func (c Config) IsDebug() bool {
	return strings.EqualFold(c.Debug, "YES")
}

// IsJSONLog reports whether log lines should be written as JSON.
func (c Config) IsJSONLog() bool {
	return strings.EqualFold(c.LogFormat, "JSON")
}

// LogPath returns the log file path, falling back to the user cache dir
// and then the working directory.
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(dir, "tripplanner", DefaultLogFileName)
}
