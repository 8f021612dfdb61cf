package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch describes one completed batch import
type ImportBatch struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Count      int       `json:"count"`
	ImportedAt time.Time `json:"imported_at"`
}

// NewImportBatch creates a batch record for the given source
func NewImportBatch(source string, count int) *ImportBatch {
	return &ImportBatch{
		ID:         uuid.New(),
		Source:     source,
		Count:      count,
		ImportedAt: time.Now().UTC(),
	}
}
