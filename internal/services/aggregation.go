package services

import (
	"cmp"
	"slices"

	"bank-transactions/internal/models"

	"github.com/shopspring/decimal"
)

// The functions in this file are pure: they never mutate their input and
// keep no state between calls.

type monthBucket struct {
	year  int
	month int
}

// SortLatestFirst returns a copy of transactions ordered by date, newest first.
// Transactions on the same date keep their relative order.
func SortLatestFirst(transactions []models.Transaction) []models.Transaction {
	sorted := slices.Clone(transactions)
	if sorted == nil {
		sorted = []models.Transaction{}
	}
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// FilterByCategory keeps the transactions whose category matches the query
// under normalization, newest first
func FilterByCategory(transactions []models.Transaction, category string) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if models.CategoryMatches(txn.Category, category) {
			matched = append(matched, txn)
		}
	}

	return SortLatestFirst(matched)
}

// TotalPerCategory sums amounts per stored category value.
// Uncategorized transactions are summed under the empty key.
func TotalPerCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// SummarizeByCategory returns one summary per stored category, ordered by category
func SummarizeByCategory(transactions []models.Transaction) []models.CategorySummary {
	index := make(map[string]int)
	summaries := make([]models.CategorySummary, 0)

	for _, txn := range transactions {
		i, ok := index[txn.Category]
		if !ok {
			i = len(summaries)
			index[txn.Category] = i
			summaries = append(summaries, models.CategorySummary{
				Category:    txn.Category,
				TotalAmount: decimal.Zero,
			})
		}
		summaries[i].TransactionCount++
		summaries[i].TotalAmount = summaries[i].TotalAmount.Add(txn.Amount)
	}

	for i := range summaries {
		summaries[i].TotalAmount = models.TruncateAmount(summaries[i].TotalAmount)
	}

	slices.SortFunc(summaries, func(a, b models.CategorySummary) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return summaries
}

// MonthlyAverageForCategory averages the spend of a category over the calendar
// months it has transactions in. The result is truncated to two fractional
// digits. It returns 0.00 and a month count of zero when nothing matches.
func MonthlyAverageForCategory(transactions []models.Transaction, category string) (decimal.Decimal, int) {
	matched := FilterByCategory(transactions, category)
	if len(matched) == 0 {
		return models.TruncateAmount(decimal.Zero), 0
	}

	buckets := make(map[monthBucket]struct{})
	total := decimal.Zero
	for _, txn := range matched {
		buckets[monthBucket{year: txn.Date.Year(), month: int(txn.Date.Month())}] = struct{}{}
		total = total.Add(txn.Amount)
	}

	months := len(buckets)
	average, _ := total.QuoRem(decimal.NewFromInt(int64(months)), models.AmountScale)

	return models.TruncateAmount(average), months
}

// ExtremalByCategoryAndYear returns the lowest or highest spend of a category
// within a calendar year. Amount ties are broken by date (newest first), then
// vendor, then source position, so the answer is deterministic.
// The boolean is false when no transaction matches.
func ExtremalByCategoryAndYear(transactions []models.Transaction, category string, year int, mode models.SpendMode) (models.Transaction, bool) {
	candidates := make([]models.Transaction, 0)
	for _, txn := range FilterByCategory(transactions, category) {
		if txn.Year() == year {
			candidates = append(candidates, txn)
		}
	}

	if len(candidates) == 0 {
		return models.Transaction{}, false
	}

	slices.SortStableFunc(candidates, compareBySpend)

	switch mode {
	case models.SpendLowest:
		return candidates[0], true
	case models.SpendHighest:
		return candidates[len(candidates)-1], true
	default:
		return models.Transaction{}, false
	}
}

func compareBySpend(a, b models.Transaction) int {
	if c := a.Amount.Cmp(b.Amount); c != 0 {
		return c
	}
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Vendor, b.Vendor); c != 0 {
		return c
	}
	return cmp.Compare(a.Sequence, b.Sequence)
}
