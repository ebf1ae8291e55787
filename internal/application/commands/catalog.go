package commands

import (
	"context"
	"fmt"

	"patternmap/internal/ports"
)

// ImportCatalogCommand copies a dataset into the catalog store
type ImportCatalogCommand struct {
	store  ports.CatalogStore
	source ports.DatasetSource
}

// NewImportCatalogCommand creates a new ImportCatalogCommand
func NewImportCatalogCommand(store ports.CatalogStore, source ports.DatasetSource) *ImportCatalogCommand {
	return &ImportCatalogCommand{
		store:  store,
		source: source,
	}
}

// Execute validates the source dataset before replacing the stored catalog
func (c *ImportCatalogCommand) Execute(ctx context.Context) (*ports.CatalogInfo, error) {
	data, err := c.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.source.Describe(), err)
	}
	return c.store.Import(ctx, data, c.source.Describe())
}

// CatalogInfoCommand reports what the catalog store holds
type CatalogInfoCommand struct {
	store ports.CatalogStore
}

// NewCatalogInfoCommand creates a new CatalogInfoCommand
func NewCatalogInfoCommand(store ports.CatalogStore) *CatalogInfoCommand {
	return &CatalogInfoCommand{store: store}
}

// Execute runs the info command
func (c *CatalogInfoCommand) Execute(ctx context.Context) (*ports.CatalogInfo, error) {
	return c.store.Info(ctx)
}
