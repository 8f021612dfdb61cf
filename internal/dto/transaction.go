package dto

import (
	"time"

	"bank-transactions/internal/models"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used in API responses
const DateLayout = "2006-01-02"

// SpendQueryParams selects the category and year of an extremal spend lookup
type SpendQueryParams struct {
	Category string `query:"category"`
	Year     int    `query:"year" validate:"required,min=1,max=9999"`
}

// TransactionResponse is the API form of a stored transaction
type TransactionResponse struct {
	ID       uuid.UUID `json:"id"`
	Date     string    `json:"date"`
	Vendor   string    `json:"vendor"`
	Type     string    `json:"type"`
	Amount   string    `json:"amount"`
	Category string    `json:"category"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
	Category     *string               `json:"category,omitempty"`
}

// CategoryTotalResponse is the spend total of one stored category
type CategoryTotalResponse struct {
	Category         string `json:"category"`
	Total            string `json:"total"`
	TransactionCount int64  `json:"transactionCount"`
}

// CategoryTotalsResponse lists totals for every stored category
type CategoryTotalsResponse struct {
	Totals []CategoryTotalResponse `json:"totals"`
}

// MonthlyAverageResponse is the average monthly spend of a category
type MonthlyAverageResponse struct {
	Category   string `json:"category"`
	Average    string `json:"average"`
	MonthCount int    `json:"monthCount"`
}

// NewTransactionResponse converts a transaction into its API form
func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       txn.ID,
		Date:     txn.Date.Format(DateLayout),
		Vendor:   txn.Vendor,
		Type:     txn.Type.String(),
		Amount:   txn.Amount.StringFixed(models.AmountScale),
		Category: txn.Category,
	}
}

// NewListTransactionsResponse converts transactions preserving their order
func NewListTransactionsResponse(transactions []models.Transaction, category *string) ListTransactionsResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		items[i] = NewTransactionResponse(txn)
	}
	return ListTransactionsResponse{
		Transactions: items,
		Count:        len(items),
		Category:     category,
	}
}

func NewCategoryTotalsResponse(summaries []models.CategorySummary) CategoryTotalsResponse {
	totals := make([]CategoryTotalResponse, len(summaries))
	for i, summary := range summaries {
		totals[i] = CategoryTotalResponse{
			Category:         summary.Category,
			Total:            summary.TotalAmount.StringFixed(models.AmountScale),
			TransactionCount: summary.TransactionCount,
		}
	}
	return CategoryTotalsResponse{Totals: totals}
}

func NewMonthlyAverageResponse(average *models.CategoryAverage) MonthlyAverageResponse {
	return MonthlyAverageResponse{
		Category:   average.Category,
		Average:    average.Average.StringFixed(models.AmountScale),
		MonthCount: average.MonthCount,
	}
}

// ImportRequest triggers a batch import. An empty path imports the configured file.
type ImportRequest struct {
	Path string `json:"path" validate:"omitempty,max=4096"`
}

// ImportResponse describes a completed batch import
type ImportResponse struct {
	BatchID    uuid.UUID `json:"batchId"`
	Source     string    `json:"source"`
	Count      int       `json:"count"`
	ImportedAt time.Time `json:"importedAt"`
}

func NewImportResponse(batch *models.ImportBatch) ImportResponse {
	return ImportResponse{
		BatchID:    batch.ID,
		Source:     batch.Source,
		Count:      batch.Count,
		ImportedAt: batch.ImportedAt,
	}
}
