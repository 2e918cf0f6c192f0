package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DBPath is the BadgerDB directory.
	DBPath string
	// AdminSecret is the single shared credential guarding all mutating
	// and moderation endpoints.
	AdminSecret string
	// ClipdropAPIKey authenticates against the text-to-image provider.
	ClipdropAPIKey string
}

// Load reads configuration from a .env file (if present) and the process
// environment. The admin secret has no safe default and must be set.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           envOr("QUILLPRESS_ADDR", ":4000"),
		DBPath:         envOr("QUILLPRESS_DB", "data/badger"),
		AdminSecret:    os.Getenv("ADMIN_SECRET"),
		ClipdropAPIKey: os.Getenv("CLIPDROP_API_KEY"),
	}

	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET must be set")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
