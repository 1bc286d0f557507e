package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for CLI flags.
const (
	EnvDB     = "PLATFORMER_DB"
	EnvConfig = "PLATFORMER_CONFIG"
	EnvLevels = "PLATFORMER_LEVELS"
	EnvAddr   = "PLATFORMER_ADDR"
)

// LoadEnv reads .env files into the process environment. Variables that are
// already set win over file values. Missing files are not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the value of key, or fallback when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
