// Package config loads the ledger configuration from defaults, an optional
// config.yaml, a .env file and LEDGER_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/expense-ledger/internal/fileutils"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, if one exists. Variables already set are not overridden.
// It returns the file that was loaded, or "" if none was.
func LoadEnv() string {
	var loaded string
	once.Do(func() {
		for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
			if !fileutils.FileExists(envFile) {
				continue
			}
			if err := godotenv.Load(envFile); err == nil {
				loaded = envFile
			}
			return
		}
	})
	return loaded
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
