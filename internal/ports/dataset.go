package ports

import (
	"context"

	"patternmap/internal/domain"
)

// DatasetSource loads the pattern catalog from a backing store
type DatasetSource interface {
	// Load reads, validates and returns the catalog.
	// A catalog that fails validation is never partially returned.
	Load(ctx context.Context) (*domain.Dataset, error)

	// Describe names the source for logs and status lines (e.g. a file path)
	Describe() string
}
