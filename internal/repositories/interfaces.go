package repositories

import (
	"bank-transactions/internal/models"
)

// TransactionRepositoryInterface defines the contract for the transaction store.
// The store only promises batch writes and full reads: SaveAll replaces the
// working set atomically and GetAll returns the last import in source order.
type TransactionRepositoryInterface interface {
	SaveAll(transactions []models.Transaction) error
	GetAll() ([]models.Transaction, error)
	Count() (int64, error)
	HealthCheck() error
}
