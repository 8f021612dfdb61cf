package services

import (
	"context"
	"io"
	"time"

	"bank-transactions/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionParserInterface converts statement files into transactions
type TransactionParserInterface interface {
	ParseFile(path string) ([]models.Transaction, error)
	Parse(r io.Reader) ([]models.Transaction, error)
}

// ImportServiceInterface defines the batch import operations
type ImportServiceInterface interface {
	// ImportFile parses the statement file at path and replaces the stored working set
	ImportFile(ctx context.Context, path string) (*models.ImportBatch, error)

	// ImportDefault imports the configured statement file
	ImportDefault(ctx context.Context) (*models.ImportBatch, error)
}

// TransactionQueryServiceInterface answers categorized queries over the stored transactions
type TransactionQueryServiceInterface interface {
	ListTransactions(category *string) ([]models.Transaction, error)
	TotalPerCategory() (map[string]decimal.Decimal, error)
	CategorySummaries() ([]models.CategorySummary, error)
	MonthlyAverageForCategory(category string) (*models.CategoryAverage, error)
	HighestSpend(category string, year int) (*models.Transaction, error)
	LowestSpend(category string, year int) (*models.Transaction, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ImportLoggerInterface interface {
	LogImportStarted(ctx context.Context, batchID uuid.UUID, source string)
	LogImportCompleted(ctx context.Context, batchID uuid.UUID, source string, count int, durationMs int64)
	LogImportFailed(ctx context.Context, batchID uuid.UUID, source string, errorMsg string, durationMs int64)
}
