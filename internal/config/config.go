// Package config resolves environment-driven defaults.
package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration read from the
// environment. Command-line flags may override any of these.
type Config struct {
	LogLevel string // slog level name: debug, info, warn, error
	Dir      string // directory the interactive browser opens in
	Seed     *int64 // phrase seed override, nil when unset
}

// Load reads configuration from MIDI_INSPO_* environment variables.
func Load() *Config {
	return &Config{
		LogLevel: getEnv("MIDI_INSPO_LOG_LEVEL", "info"),
		Dir:      getEnv("MIDI_INSPO_DIR", "."),
		Seed:     getSeed("MIDI_INSPO_SEED"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// getSeed parses an optional integer seed. Unset or malformed values
// leave the seed to be derived from the file's features.
func getSeed(key string) *int64 {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &seed
}
