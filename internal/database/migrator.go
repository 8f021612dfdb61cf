package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bank-transactions/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies db/migrations to a postgres store with golang-migrate.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
}

func NewMigrationRunner(db *sql.DB, path string) *MigrationRunner {
	if path == "" {
		path = defaultMigrationsPath
	}
	return &MigrationRunner{db: db, migrationsPath: path}
}

// WaitForDatabase pings every retryInterval until the database answers,
// maxRetries is exhausted or ctx is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		slog.WarnContext(ctx, "database not ready", "attempt", attempt, "max_attempts", maxRetries, "error", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", maxRetries, lastErr)
}

// RunMigrations applies every pending up migration. A missing migrations
// directory is not an error; the schema is then left as it is.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); errors.Is(err, os.ErrNotExist) {
		slog.Warn("skipping migrations", "error", fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath))
		return nil
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		// A dirty version means an earlier run died mid-migration. The
		// migrations are idempotent, so the version before it is forced and
		// Up applies the dirty one again.
		slog.Warn("schema is dirty, re-running migration", "version", version)
		if err := m.Force(versionBefore(version)); err != nil {
			return fmt.Errorf("failed to force schema version: %w", err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, _, err = m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	slog.Info("schema is current", "version", version)
	return nil
}

// Migrate brings the schema up to date. Postgres uses the versioned SQL
// migrations in path; sqlite uses gorm auto-migration.
func (db *DB) Migrate(ctx context.Context, path string) error {
	if db.config.Driver != config.DriverPostgres {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, path)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	return runner.RunMigrations()
}

// versionBefore returns the version to force so that version is applied
// again. Migration files are numbered without gaps.
func versionBefore(version uint) int {
	if version <= 1 {
		return migrate.NilVersion
	}
	return int(version) - 1
}
