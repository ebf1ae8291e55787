package ports

import (
	"context"
	"time"

	"patternmap/internal/domain"
)

// CatalogInfo describes the dataset held by a catalog store
type CatalogInfo struct {
	Path       string
	Source     string // Where the imported dataset came from
	ImportedAt time.Time
	Patterns   int
	Links      int
	Layers     int
}

// CatalogStore keeps an imported copy of a dataset in a local database.
// Load returns the same validated dataset that was imported.
type CatalogStore interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// Import replaces the stored catalog with data inside one transaction
	Import(ctx context.Context, data *domain.Dataset, source string) (*CatalogInfo, error)

	// Queries
	Load(ctx context.Context) (*domain.Dataset, error)
	Info(ctx context.Context) (*CatalogInfo, error)

	// Batch updates
	BeginTx() (CatalogTx, error)
}

// CatalogTx represents a transaction for atomic catalog replacement
type CatalogTx interface {
	Reset() error
	InsertLayer(position int, layer domain.Layer) error
	InsertPattern(position int, p *domain.Pattern, m domain.Metrics) error
	InsertLink(position int, link domain.Link) error
	SetMeta(key, value string) error

	// Transaction control
	Commit() error
	Rollback() error
}
