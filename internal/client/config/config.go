package config

import "time"

// Config holds runtime settings for the ExamPilot CLI.
//
// Fields:
//   - APIBaseURL: base URL of the explanation service (scheme://host[:port]).
//   - APIKey: bearer credential for the explanation service. Never has a
//     default and never lives in code; it comes from the environment only.
//   - RequestTimeout: per-request timeout for explanation calls.
//   - DatabaseDSN: path/DSN of the local sqlite state database.
//   - SessionTTL: how long a persisted session token stays valid.
type Config struct {
	APIBaseURL     string
	APIKey         string
	RequestTimeout time.Duration
	DatabaseDSN    string
	SessionTTL     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.openai.com"
	c.RequestTimeout = 30 * time.Second
	c.DatabaseDSN = "exampilot.db"
	c.SessionTTL = 30 * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
