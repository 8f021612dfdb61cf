package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the channel a transaction was made through
type TransactionType string

const (
	TransactionTypeCard        TransactionType = "CARD"
	TransactionTypeDirectDebit TransactionType = "DIRECT_DEBIT"
	TransactionTypeInternet    TransactionType = "INTERNET"
)

// AmountScale is the number of fractional digits every amount carries
const AmountScale int32 = 2

var zeroAtScale = decimal.New(0, -AmountScale)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction represents one imported bank statement line
type Transaction struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Sequence int             `gorm:"column:import_sequence;not null;index" json:"-"`
	Date     time.Time       `gorm:"type:date;not null;index" json:"date"`
	Vendor   string          `gorm:"type:varchar(255);not null" json:"vendor"`
	Type     TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category string          `gorm:"type:varchar(255);not null;default:''" json:"category"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	t.EnsureID()
	return t.Validate()
}

// EnsureID assigns a fresh identifier when the transaction has none yet
func (t *Transaction) EnsureID() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
}

// Validate checks the fields every stored transaction needs. Vendor is
// free text and may be empty.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	return nil
}

// Year returns the calendar year of the transaction date
func (t *Transaction) Year() int {
	return t.Date.Year()
}

// SameRecord reports whether two transactions carry the same statement data,
// ignoring the storage identity.
func (t Transaction) SameRecord(other Transaction) bool {
	return t.Date.Equal(other.Date) &&
		t.Vendor == other.Vendor &&
		t.Type == other.Type &&
		t.Amount.Equal(other.Amount) &&
		t.Category == other.Category
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValid checks if the transaction type is one of the known channels
func (tt TransactionType) IsValid() bool {
	switch tt {
	case TransactionTypeCard, TransactionTypeDirectDebit, TransactionTypeInternet:
		return true
	default:
		return false
	}
}

// String returns the wire form of the transaction type
func (tt TransactionType) String() string {
	return string(tt)
}

// AllTransactionTypes returns every valid transaction type
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeCard,
		TransactionTypeDirectDebit,
		TransactionTypeInternet,
	}
}

// IsValidTransactionType checks if the raw value names a transaction type.
// The comparison is case-sensitive.
func IsValidTransactionType(value string) bool {
	return TransactionType(value).IsValid()
}

// TruncateAmount drops every fractional digit past AmountScale, rounding toward zero
func TruncateAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(AmountScale).Add(zeroAtScale)
}

// NewDate builds a calendar date at midnight UTC
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
