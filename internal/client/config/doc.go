// Package config loads runtime configuration for the ExamPilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the explanation service
//	-d string   path of the local state database
//	-t int      explanation request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.openai.com",
//	  "request_timeout": "30s",
//	  "database_dsn": "exampilot.db",
//	  "session_ttl": "720h"
//	}
//
// # Secrets
//
// The explanation-service API key is read exclusively from the
// EXAMPILOT_API_KEY environment variable (a .env file works too). It has no
// flag, no JSON field, and no default.
package config
