// Package config loads runtime configuration for the sajubook client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path to the client-local SQLite database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "database_dsn": "sajubook.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, RequestTimeout, DatabaseDSN
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
