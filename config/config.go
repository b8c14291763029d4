// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort   = "8080"
	defaultDBPath = "hearth.db"
)

// Config holds everything the process needs to start.
type Config struct {
	// AnthropicKey may be empty. The server still starts so the memory
	// and conversation APIs stay usable, but chat turns fail until it
	// is set.
	AnthropicKey string
	Port         string
	DBPath       string
	// Model overrides the built-in default when set.
	Model string
	Debug bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is folded in first when present; real environment
// variables win over file values.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		Port:         envOr("PORT", defaultPort),
		DBPath:       envOr("HEARTH_DB_PATH", defaultDBPath),
		Model:        os.Getenv("HEARTH_MODEL"),
	}
	if v, err := strconv.ParseBool(os.Getenv("HEARTH_DEBUG")); err == nil {
		cfg.Debug = v
	}
	return cfg
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
