package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names. EXAMPILOT_API_KEY is the only way to supply
// the explanation-service credential; it is never read from flags or JSON.
const (
	EnvAPIKey      = "EXAMPILOT_API_KEY"
	EnvAPIBaseURL  = "EXAMPILOT_API_URL"
	EnvDatabaseDSN = "EXAMPILOT_DB"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one is present in the working directory.
// A missing .env file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}
