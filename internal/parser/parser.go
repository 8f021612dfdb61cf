package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"bank-transactions/internal/models"
	"bank-transactions/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrFileUnreadable  = errors.New("can't find the file. There is a problem with a file's path, it can not be read")
	ErrFileUnparseable = errors.New("there is a problem with parsing. JSON data is not valid")
	ErrFieldInvalid    = errors.New("invalid field value")
)

// FieldError reports the first invalid field of a statement record.
// It wraps ErrFieldInvalid.
type FieldError struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %q has invalid value %q: %s", e.Index, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrFieldInvalid
}

// statementRecord is one raw object of the statement file
type statementRecord struct {
	Date     string  `json:"date" validate:"required,statement_date"`
	Vendor   string  `json:"vendor"`
	Type     string  `json:"type" validate:"required,transaction_type"`
	Amount   string  `json:"amount" validate:"required,decimal_amount"`
	Category *string `json:"category"`
}

// Parser converts statement files into transactions.
// A file is accepted or rejected as a whole: the first invalid record fails the batch.
type Parser struct {
	validator *validation.Validator
}

// NewParser creates a parser backed by the shared validator
func NewParser() *Parser {
	return &Parser{validator: validation.GetValidator()}
}

// ParseFile reads and parses the statement file at path
func (p *Parser) ParseFile(path string) ([]models.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse parses a JSON array of statement records, preserving source order
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrFileUnparseable)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnparseable, err)
	}

	transactions := make([]models.Transaction, 0, len(elements))
	for i, element := range elements {
		transaction, err := p.parseRecord(i, element)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func (p *Parser) parseRecord(index int, element json.RawMessage) (models.Transaction, error) {
	trimmed := bytes.TrimSpace(element)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Transaction{}, fmt.Errorf("%w: record %d is not an object", ErrFileUnparseable, index)
	}

	var record statementRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.Transaction{}, &FieldError{
				Index:  index,
				Field:  typeErr.Field,
				Value:  typeErr.Value,
				Reason: "must be a string",
			}
		}
		return models.Transaction{}, fmt.Errorf("%w: record %d: %w", ErrFileUnparseable, index, err)
	}

	if err := p.validator.Struct(record); err != nil {
		return models.Transaction{}, toFieldError(index, err)
	}

	return record.toTransaction(index)
}

func (r statementRecord) toTransaction(index int) (models.Transaction, error) {
	date, err := models.ParseStatementDate(r.Date)
	if err != nil {
		return models.Transaction{}, &FieldError{Index: index, Field: "date", Value: r.Date, Reason: err.Error()}
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Transaction{}, &FieldError{Index: index, Field: "amount", Value: r.Amount, Reason: "must be a decimal number"}
	}

	category := models.Uncategorized
	if r.Category != nil {
		category = *r.Category
	}

	return models.Transaction{
		Sequence: index,
		Date:     date,
		Vendor:   r.Vendor,
		Type:     models.TransactionType(r.Type),
		Amount:   models.TruncateAmount(amount),
		Category: category,
	}, nil
}

func toFieldError(index int, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: record %d: %w", ErrFieldInvalid, index, err)
	}

	fe := validationErrs[0]
	return &FieldError{
		Index:  index,
		Field:  fe.Field(),
		Value:  fmt.Sprintf("%v", fe.Value()),
		Reason: describeTag(fe.Tag()),
	}
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "statement_date":
		return "must match dd/Mon/yyyy, e.g. 06/Dec/2021"
	case "transaction_type":
		return "must be one of CARD, DIRECT_DEBIT, INTERNET"
	case "decimal_amount":
		return "must be a decimal number"
	default:
		return fmt.Sprintf("failed %s validation", tag)
	}
}
