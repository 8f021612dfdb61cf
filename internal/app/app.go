// Package app wires configuration, the transaction store and the services
// shared by cmd/server and cmd/txn.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bank-transactions/internal/config"
	"bank-transactions/internal/database"
	"bank-transactions/internal/parser"
	"bank-transactions/internal/repositories"
	"bank-transactions/internal/services"

	"github.com/joho/godotenv"
)

// Container holds the long-lived components of one process
type Container struct {
	Config          *config.Config
	TransactionRepo repositories.TransactionRepositoryInterface
	ImportService   services.ImportServiceInterface
	QueryService    services.TransactionQueryServiceInterface

	db     *database.DB
	logger *slog.Logger
}

// LoadEnvFile loads a .env file for local development.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger installs the default structured logger writing to w: JSON in
// production, text everywhere else
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads the environment configuration and validates it
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// New opens the configured store and builds the services on top of it.
// metrics may be nil.
func New(cfg *config.Config, logger *slog.Logger, metrics services.MetricsRecorderInterface) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config: cfg,
		logger: logger,
	}

	if cfg.Database.Driver == config.DriverMemory {
		c.TransactionRepo = repositories.NewMemoryTransactionRepository()
	} else {
		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(context.Background(), ""); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		c.db = db
		c.TransactionRepo = repositories.NewTransactionRepository(db.DB)
	}

	c.ImportService = services.NewImportService(
		parser.NewParser(),
		c.TransactionRepo,
		services.NewImportLogger(logger),
		metrics,
		cfg.Import.DataFile,
	)
	c.QueryService = services.NewTransactionQueryService(c.TransactionRepo, metrics)

	logger.Info("transaction store ready", "driver", cfg.Database.Driver, "data_file", cfg.Import.DataFile)
	return c, nil
}

// ImportOnStartup imports the configured data file when IMPORT_ON_STARTUP is set.
// A failed import keeps the previously stored transactions.
func (c *Container) ImportOnStartup(ctx context.Context) error {
	if !c.Config.Import.OnStartup {
		return nil
	}

	batch, err := c.ImportService.ImportDefault(ctx)
	if err != nil {
		return fmt.Errorf("startup import of %s failed: %w", c.Config.Import.DataFile, err)
	}

	c.logger.Info("startup import finished", "source", batch.Source, "transactions", batch.Count)
	return nil
}

// EnsureImported imports the configured data file for a query command that
// needs data. A persistent store that already holds transactions is left as
// is, so an earlier "txn import -file" survives later queries.
func (c *Container) EnsureImported(ctx context.Context) error {
	if c.Config.Database.Driver != config.DriverMemory {
		count, err := c.TransactionRepo.Count()
		if err != nil {
			return fmt.Errorf("failed to count stored transactions: %w", err)
		}
		if count > 0 {
			return nil
		}
	}
	return c.ImportOnStartup(ctx)
}

// Close releases the database connection, if any
func (c *Container) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.db.Close(); err != nil {
		return errors.Join(errors.New("failed to close database"), err)
	}
	return nil
}
