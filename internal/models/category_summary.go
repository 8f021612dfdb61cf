package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// CategoryAverage is the average monthly spend for a category.
// MonthCount is zero when no transaction matched, in which case Average is 0.00.
type CategoryAverage struct {
	Category   string          `json:"category"`
	Average    decimal.Decimal `json:"average"`
	MonthCount int             `json:"month_count"`
}

// HasData reports whether at least one transaction contributed to the average
func (a *CategoryAverage) HasData() bool {
	return a.MonthCount > 0
}
