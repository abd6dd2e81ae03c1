package config

import (
	"time"

	"github.com/dsmolenski/accountcli/internal/client/validate"
)

// Config holds runtime settings for the account client.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabaseDSN: path of the local sqlite file holding the session store.
//   - Validation: credential policy thresholds used by the signup form.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DatabaseDSN    string
	Validation     validate.Policy
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "account.db"
	c.Validation = validate.DefaultPolicy()
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
