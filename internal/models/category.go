package models

import (
	"strings"

	"golang.org/x/text/cases"
)

// Uncategorized is the bucket for transactions imported without a category
const Uncategorized = ""

// NormalizeCategory returns the comparison key for a category label.
// Surrounding whitespace is dropped and the label is case folded; the stored
// category itself is never rewritten.
func NormalizeCategory(category string) string {
	return cases.Fold().String(strings.TrimSpace(category))
}

// CategoryMatches reports whether a stored category equals the query category
// under normalization
func CategoryMatches(stored, query string) bool {
	return NormalizeCategory(stored) == NormalizeCategory(query)
}
