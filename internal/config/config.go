package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DataDir      string
	Store        string // json, sqlite, postgres, mysql
	DatabasePath string
	DatabaseURL  string
	SeedLists    bool
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when
// present.
func Load() *Config {
	_ = godotenv.Load()

	dataDir := getEnv("VOCAB_DATA_DIR", defaultDataDir())
	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DataDir:      dataDir,
		Store:        getEnv("VOCAB_STORE", "json"),
		DatabasePath: getEnv("VOCAB_DB_PATH", filepath.Join(dataDir, "vocabmaster.db")),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SeedLists:    getEnv("VOCAB_SEED_LISTS", "true") == "true",
	}
}

// defaultDataDir keeps snapshots in a per-user dot directory, falling
// back to the working directory when the home directory is unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vocabmaster"
	}
	return filepath.Join(home, ".vocabmaster")
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
