// Package database owns the connection to the relational store: opening the
// engine, the per-request connection accessor, and the destructive
// schema+seed initialization used by the init-db command.
package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard/internal/config"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Connect opens the database selected by cfg.DBDriver and verifies it answers.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the handle if ping fails to avoid a resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to the database successfully", "driver", cfg.DBDriver)
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Database); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(sqliteDSN(cfg.Database)), nil
	case "postgres":
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// sqliteDSN turns on foreign keys for every pooled connection; the pragma is
// per connection in SQLite, so setting it once after open is not enough.
func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// InitDB drops and recreates every table, then loads the song dataset from
// cfg.SeedCSV. A missing seed file leaves the song table empty.
func InitDB(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	script, err := schemaFS.ReadFile("schema/" + cfg.DBDriver + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", cfg.DBDriver, err)
	}

	if err := db.WithContext(ctx).Exec(string(script)).Error; err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info("Database schema created", "driver", cfg.DBDriver)

	f, err := os.Open(cfg.SeedCSV)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Seed file not found, song table left empty", "path", cfg.SeedCSV)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	count, err := SeedSongs(ctx, db, f)
	if err != nil {
		return err
	}
	logger.Info("Seeded songs", "path", cfg.SeedCSV, "count", count)
	return nil
}
