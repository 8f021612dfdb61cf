package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-transactions/internal/models"
	"bank-transactions/internal/parser"
	"bank-transactions/internal/repositories"
)

var (
	ErrImportPathRequired = errors.New("import file path is required")
)

type importService struct {
	parser          TransactionParserInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          ImportLoggerInterface
	metrics         MetricsRecorderInterface
	defaultPath     string
}

// NewImportService creates the batch import service.
// defaultPath is the statement file used by ImportDefault.
func NewImportService(
	parser TransactionParserInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger ImportLoggerInterface,
	metrics MetricsRecorderInterface,
	defaultPath string,
) ImportServiceInterface {
	return &importService{
		parser:          parser,
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
		defaultPath:     defaultPath,
	}
}

func (s *importService) ImportDefault(ctx context.Context) (*models.ImportBatch, error) {
	return s.ImportFile(ctx, s.defaultPath)
}

// ImportFile parses the file and replaces the stored working set with its
// transactions. Nothing is stored unless the whole file is valid.
func (s *importService) ImportFile(ctx context.Context, path string) (*models.ImportBatch, error) {
	if path == "" {
		return nil, ErrImportPathRequired
	}

	start := time.Now()
	batch := models.NewImportBatch(path, 0)
	s.logger.LogImportStarted(ctx, batch.ID, path)

	transactions, err := s.parser.ParseFile(path)
	if err != nil {
		s.fail(ctx, batch, err, start)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		s.fail(ctx, batch, err, start)
		return nil, err
	}

	if err := s.transactionRepo.SaveAll(transactions); err != nil {
		err = fmt.Errorf("failed to store imported transactions: %w", err)
		s.fail(ctx, batch, err, start)
		return nil, err
	}

	batch.Count = len(transactions)
	duration := time.Since(start)

	s.logger.LogImportCompleted(ctx, batch.ID, path, batch.Count, duration.Milliseconds())
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricImportSucceeded, nil)
		s.metrics.RecordProcessingTime(MetricImportDuration, duration)
		s.metrics.RecordGauge(MetricImportedRows, float64(batch.Count), nil)
		s.metrics.RecordGauge(MetricStoredRows, float64(batch.Count), nil)
	}

	return batch, nil
}

func (s *importService) fail(ctx context.Context, batch *models.ImportBatch, err error, start time.Time) {
	duration := time.Since(start)
	s.logger.LogImportFailed(ctx, batch.ID, batch.Source, err.Error(), duration.Milliseconds())
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricImportFailed, map[string]string{"reason": failureReason(err)})
		s.metrics.RecordProcessingTime(MetricImportDuration, duration)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, parser.ErrFileUnreadable):
		return "unreadable"
	case errors.Is(err, parser.ErrFileUnparseable):
		return "unparseable"
	case errors.Is(err, parser.ErrFieldInvalid):
		return "field_invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "store"
	}
}
