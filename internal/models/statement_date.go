package models

import (
	"errors"
	"regexp"
	"time"
)

// StatementDateLayout is the dd/Mon/yyyy layout used by statement exports, e.g. 06/Dec/2021
const StatementDateLayout = "02/Jan/2006"

var (
	ErrInvalidStatementDate = errors.New("date must match dd/Mon/yyyy")

	statementDatePattern = regexp.MustCompile(`^\d{2}/[A-Z][a-z]{2}/\d{4}$`)
)

// ParseStatementDate parses a dd/Mon/yyyy date into midnight UTC.
// The month abbreviation is matched exactly (Jan, Feb, ... Dec).
func ParseStatementDate(value string) (time.Time, error) {
	if !statementDatePattern.MatchString(value) {
		return time.Time{}, ErrInvalidStatementDate
	}

	date, err := time.ParseInLocation(StatementDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidStatementDate
	}

	return date, nil
}
