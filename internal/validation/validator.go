package validation

import (
	"reflect"
	"strings"
	"sync"

	"bank-transactions/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("statement_date", validateStatementDate)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("spend_mode", validateSpendMode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateStatementDate validates a dd/Mon/yyyy date such as 06/Dec/2021
func validateStatementDate(fl validator.FieldLevel) bool {
	_, err := models.ParseStatementDate(fl.Field().String())
	return err == nil
}

// validateTransactionType validates that the type is CARD, DIRECT_DEBIT or INTERNET.
// Unlike free-text fields the match is case-sensitive.
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateDecimalAmount validates that the value is a parseable decimal number
func validateDecimalAmount(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := decimal.NewFromString(value)
	return err == nil
}

// validateSpendMode validates an extremal query mode
func validateSpendMode(fl validator.FieldLevel) bool {
	_, err := models.ParseSpendMode(fl.Field().String())
	return err == nil
}
