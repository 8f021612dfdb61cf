package repositories

import (
	"fmt"

	"bank-transactions/internal/models"

	"gorm.io/gorm"
)

const saveBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface on top of gorm
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new gorm-backed transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// SaveAll replaces every stored transaction with the given batch in a single
// database transaction, so readers see either the old or the new set.
func (r *transactionRepository) SaveAll(transactions []models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		if len(transactions) == 0 {
			return nil
		}

		batch := make([]models.Transaction, len(transactions))
		copy(batch, transactions)

		if err := tx.CreateInBatches(&batch, saveBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetAll retrieves every stored transaction in import order
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("import_sequence ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	for i := range transactions {
		transactions[i].Date = transactions[i].Date.UTC()
		transactions[i].Amount = models.TruncateAmount(transactions[i].Amount)
	}

	return transactions, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// HealthCheck pings the underlying database
func (r *transactionRepository) HealthCheck() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
