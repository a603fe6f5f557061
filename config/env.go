// Package config provides environment lookups shared by the front-ends.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by the front-ends.
const (
	EnvLogLevel = "WAVES_LOG_LEVEL"
	EnvLogFile  = "WAVES_LOG_FILE"
	EnvProfile  = "WAVES_PROFILE"
	EnvSeed     = "WAVES_SEED"
	EnvDebug    = "WAVES_DEBUG"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool parses key with strconv.ParseBool. Unset or malformed values yield fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

// GetEnvInt parses key as a base-10 integer. Unset or malformed values yield fallback.
func GetEnvInt(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvLevel reads a slog level name ("debug", "info", "warn", "error").
func GetEnvLevel(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fallback
	}
	return level
}
