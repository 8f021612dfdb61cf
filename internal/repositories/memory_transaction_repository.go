package repositories

import (
	"sync"

	"bank-transactions/internal/models"
)

// memoryTransactionRepository keeps the working set in process memory
type memoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewMemoryTransactionRepository creates an empty in-memory transaction repository
func NewMemoryTransactionRepository() TransactionRepositoryInterface {
	return &memoryTransactionRepository{}
}

// SaveAll swaps in a private copy of the batch
func (r *memoryTransactionRepository) SaveAll(transactions []models.Transaction) error {
	batch := make([]models.Transaction, len(transactions))
	copy(batch, transactions)

	for i := range batch {
		if err := batch[i].Validate(); err != nil {
			return err
		}
		batch[i].EnsureID()
	}

	r.mu.Lock()
	r.transactions = batch
	r.mu.Unlock()

	return nil
}

// GetAll returns a copy of the working set so callers cannot mutate the store
func (r *memoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Transaction, len(r.transactions))
	copy(snapshot, r.transactions)
	return snapshot, nil
}

func (r *memoryTransactionRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.transactions)), nil
}

func (r *memoryTransactionRepository) HealthCheck() error {
	return nil
}
