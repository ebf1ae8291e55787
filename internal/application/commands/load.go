package commands

import (
	"context"

	"patternmap/internal/application"
	"patternmap/internal/ports"
)

// LoadCatalogCommand loads and indexes a dataset
type LoadCatalogCommand struct {
	source ports.DatasetSource
}

// NewLoadCatalogCommand creates a new LoadCatalogCommand
func NewLoadCatalogCommand(source ports.DatasetSource) *LoadCatalogCommand {
	return &LoadCatalogCommand{source: source}
}

// Execute runs the load command
func (c *LoadCatalogCommand) Execute(ctx context.Context) (*application.Catalog, error) {
	return application.OpenCatalog(ctx, c.source)
}
