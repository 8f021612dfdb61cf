package models

import "fmt"

// SpendMode selects which end of an amount-ordered slice an extremal query returns
type SpendMode string

const (
	SpendLowest  SpendMode = "lowest"
	SpendHighest SpendMode = "highest"
)

// ParseSpendMode parses a spend mode name
func ParseSpendMode(value string) (SpendMode, error) {
	switch SpendMode(value) {
	case SpendLowest, SpendHighest:
		return SpendMode(value), nil
	default:
		return "", fmt.Errorf("unknown spend mode %q", value)
	}
}
