package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// envFiles are tried in order; the first one that loads wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from .env/.env.local. Variables already
// present in the process environment are not overwritten. Absent files are ignored.
func loadEnvFile() {
	for _, envPath := range envFiles {
		err := godotenv.Load(envPath)
		if err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(envPath))
			return
		}
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to load env file", logfields.Path(envPath), logfields.Error(err))
		}
	}
}
