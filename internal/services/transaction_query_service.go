package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-transactions/internal/models"
	"bank-transactions/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrNoMatchingTransaction = errors.New("no transaction matches the given category and year")
)

// Query names used for metrics labels
const (
	QueryList           = "list"
	QueryTotals         = "totals"
	QueryMonthlyAverage = "monthly_average"
	QueryHighestSpend   = "highest_spend"
	QueryLowestSpend    = "lowest_spend"
)

type transactionQueryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionQueryService creates the query facade over a transaction store.
// Every call reads a fresh snapshot from the store.
func NewTransactionQueryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryServiceInterface {
	return &transactionQueryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ListTransactions returns every transaction in source order when category is nil,
// otherwise the matching transactions newest first
func (s *transactionQueryService) ListTransactions(category *string) ([]models.Transaction, error) {
	defer s.observe(QueryList, time.Now())

	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if category == nil {
		return transactions, nil
	}
	return FilterByCategory(transactions, *category), nil
}

func (s *transactionQueryService) TotalPerCategory() (map[string]decimal.Decimal, error) {
	defer s.observe(QueryTotals, time.Now())

	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return TotalPerCategory(transactions), nil
}

// CategorySummaries returns per-category totals and counts ordered by category
func (s *transactionQueryService) CategorySummaries() ([]models.CategorySummary, error) {
	defer s.observe(QueryTotals, time.Now())

	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return SummarizeByCategory(transactions), nil
}

func (s *transactionQueryService) MonthlyAverageForCategory(category string) (*models.CategoryAverage, error) {
	defer s.observe(QueryMonthlyAverage, time.Now())

	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	average, months := MonthlyAverageForCategory(transactions, category)
	return &models.CategoryAverage{
		Category:   category,
		Average:    average,
		MonthCount: months,
	}, nil
}

func (s *transactionQueryService) HighestSpend(category string, year int) (*models.Transaction, error) {
	return s.extremal(QueryHighestSpend, category, year, models.SpendHighest)
}

func (s *transactionQueryService) LowestSpend(category string, year int) (*models.Transaction, error) {
	return s.extremal(QueryLowestSpend, category, year, models.SpendLowest)
}

func (s *transactionQueryService) extremal(query, category string, year int, mode models.SpendMode) (*models.Transaction, error) {
	defer s.observe(query, time.Now())

	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	txn, found := ExtremalByCategoryAndYear(transactions, category, year, mode)
	if !found {
		if s.metrics != nil {
			s.metrics.IncrementCounter(MetricQueryNoMatchFound, map[string]string{"query": query})
		}
		return nil, fmt.Errorf("%w: category %q, year %d", ErrNoMatchingTransaction, category, year)
	}
	return &txn, nil
}

func (s *transactionQueryService) snapshot() ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		slog.Error("failed to load transactions", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionQueryService) observe(query string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricQueryExecuted, map[string]string{"query": query})
	s.metrics.RecordProcessingTime(query, time.Since(start))
}
