// Package databasetest opens throwaway SQLite databases with the full schema
// applied, for tests in other packages.
package databasetest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard/database"
	"jobboard/internal/config"
)

// Config returns a sqlite configuration rooted in a fresh temp dir, with no
// seed file.
func Config(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBDriver:      "sqlite",
		Database:      filepath.Join(dir, "test.sqlite"),
		SeedCSV:       filepath.Join(dir, "missing.csv"),
		SecretKey:     "test-secret",
		TranslateFrom: "de",
		TranslateMode: config.TranslateAppend,
		TranslateRate: 100,
		LogLevel:      "error",
		LogFormat:     "text",
	}
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New opens a new database with an empty schema and closes it when the test
// ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	return NewWithConfig(t, Config(t))
}

// NewWithConfig is New for a caller-provided configuration.
func NewWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.Connect(cfg, Logger())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.InitDB(context.Background(), db, cfg, Logger()))
	return db
}
