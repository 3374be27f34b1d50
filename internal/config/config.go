// Package config loads pane-pick configuration from the environment.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the caller)
//  2. Environment variables (PANE_PICK_*)
//  3. Built-in defaults
//
// There is no config file.
package config

// Config holds all pane-pick configuration.
type Config struct {
	Format  string // "plain" or "json"
	Mux     string // empty means auto-detect
	Theme   string // "dark" or "light"
	Verbose bool

	// OTEL
	OTELEndpoint string
	OTELHeaders  string // Comma-separated key=value pairs, e.g. "Authorization=Basic abc123"
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Format: "plain",
		Theme:  "dark",
	}
}

// Load returns the defaults overlaid with environment variables read
// through getenv (usually os.Getenv).
func Load(getenv func(string) string) *Config {
	cfg := Defaults()
	mergeEnv(cfg, getenv)
	return cfg
}

// mergeEnv applies environment variables onto cfg.
func mergeEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("PANE_PICK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("PANE_PICK_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := getenv("PANE_PICK_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := getenv("PANE_PICK_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}
