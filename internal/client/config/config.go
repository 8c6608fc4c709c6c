package config

import "time"

// Config holds runtime settings for the sajubook client.
//
// Fields:
//   - BaseURL: root of the backend HTTP API, including the /api prefix.
//   - RequestTimeout: fixed upper bound on any single outgoing request.
//   - DatabaseDSN: path of the client-local SQLite database holding the session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "sajubook.db"
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
