package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dsmolenski/accountcli/internal/flagx"
	"github.com/dsmolenski/accountcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseDSN    string         `json:"database_dsn"`

	// Validation policy overrides; pointers so absent keys keep the
	// defaults.
	UsernameMinLen        *int  `json:"username_min_len"`
	AlphanumericUsernames *bool `json:"alphanumeric_usernames"`
	PasswordMinLen        *int  `json:"password_min_len"`
	RequireAllClasses     *bool `json:"require_all_classes"`
	NameMinLen            *int  `json:"name_min_len"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; omitted fields keep
//     their current values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}

	if jc.UsernameMinLen != nil {
		cfg.Validation.UsernameMinLen = *jc.UsernameMinLen
	}
	if jc.AlphanumericUsernames != nil {
		cfg.Validation.AlphanumericUsernames = *jc.AlphanumericUsernames
	}
	if jc.PasswordMinLen != nil {
		cfg.Validation.PasswordMinLen = *jc.PasswordMinLen
	}
	if jc.RequireAllClasses != nil {
		cfg.Validation.RequireAllClasses = *jc.RequireAllClasses
	}
	if jc.NameMinLen != nil {
		cfg.Validation.NameMinLen = *jc.NameMinLen
	}
}
