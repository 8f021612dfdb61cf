package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries, retryInterval = retries, 10*time.Millisecond
	t.Cleanup(func() {
		maxRetries, retryInterval = originalRetries, originalInterval
	})
}

func newPingMock(t *testing.T) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMigrationRunner(db, "/nonexistent/migrations"), mock
}

func TestNewMigrationRunner_DefaultPath(t *testing.T) {
	assert.Equal(t, defaultMigrationsPath, NewMigrationRunner(nil, "").migrationsPath)
	assert.Equal(t, "deploy/sql", NewMigrationRunner(nil, "deploy/sql").migrationsPath)
}

func TestWaitForDatabase(t *testing.T) {
	fastRetries(t, 3)

	t.Run("ready after a refused ping", func(t *testing.T) {
		runner, mock := newPingMock(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing()

		require.NoError(t, runner.WaitForDatabase(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up", func(t *testing.T) {
		runner, mock := newPingMock(t)
		refused := errors.New("connection refused")
		for i := 0; i < 3; i++ {
			mock.ExpectPing().WillReturnError(refused)
		}

		err := runner.WaitForDatabase(context.Background())

		assert.ErrorContains(t, err, "database not ready after 3 attempts")
		assert.ErrorIs(t, err, refused)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		runner, _ := newPingMock(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, runner.WaitForDatabase(ctx), context.Canceled)
	})
}

func TestRunMigrations_MissingDirectoryIsSkipped(t *testing.T) {
	runner, mock := newPingMock(t)

	assert.NoError(t, runner.RunMigrations())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionBefore(t *testing.T) {
	assert.Equal(t, migrate.NilVersion, versionBefore(1))
	assert.Equal(t, migrate.NilVersion, versionBefore(0))
	assert.Equal(t, 2, versionBefore(3))
}

func TestDB_MigrateSQLite(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Migrate(context.Background(), ""))
	assert.True(t, db.Migrator().HasTable("transactions"))
}
