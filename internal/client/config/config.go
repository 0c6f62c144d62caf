package config

import (
	"time"

	"github.com/dmitrijs2005/semant/internal/logging"
)

// Config holds runtime settings for the semant client.
//
// Fields:
//   - ServerURL: base URL of the backend API, including the /api prefix.
//   - RequestTimeout: per-request deadline applied by the HTTP client.
//   - RateLimit: outbound requests per second; 0 disables limiting.
//   - DatabaseDSN: SQLite DSN of the local persistent store.
//   - LogFormat: "text" (slog) or "zap".
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	RateLimit      float64
	DatabaseDSN    string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.RateLimit = 10
	c.DatabaseDSN = "semant.db"
	c.LogFormat = logging.FormatText
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
