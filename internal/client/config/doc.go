// Package config loads runtime configuration for the account client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "database_dsn": "account.db"
//	}
//
// Primary API
//
//   - type Config                     — holds ServerURL, RequestTimeout and DatabaseDSN
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
