package commands

import (
	"context"

	"patternmap/internal/application"
	"patternmap/internal/domain"
)

// ListPatternsCommand lists the patterns of the catalog, optionally for a set of layers
type ListPatternsCommand struct {
	cat    *application.Catalog
	Layers []string
}

// NewListPatternsCommand creates a new ListPatternsCommand
func NewListPatternsCommand(cat *application.Catalog, layers []string) *ListPatternsCommand {
	return &ListPatternsCommand{
		cat:    cat,
		Layers: layers,
	}
}

// Execute runs the list patterns command
func (c *ListPatternsCommand) Execute(ctx context.Context) ([]domain.Pattern, error) {
	if len(c.Layers) == 0 {
		return c.cat.Data.Patterns, nil
	}
	if err := application.ValidateLayers(c.cat.Data, c.Layers); err != nil {
		return nil, err
	}

	e := c.cat.NewEngine()
	if err := e.SetLayerFilters(c.Layers); err != nil {
		return nil, err
	}
	var patterns []domain.Pattern
	for i, p := range c.cat.Data.Patterns {
		if e.Node(i).Visible {
			patterns = append(patterns, p)
		}
	}
	return patterns, nil
}

// LayerEntry is a legend row with its pattern count
type LayerEntry struct {
	domain.Layer
	Count int
}

// ListLayersCommand lists the legend: every layer at least one pattern carries
type ListLayersCommand struct {
	cat *application.Catalog
}

// NewListLayersCommand creates a new ListLayersCommand
func NewListLayersCommand(cat *application.Catalog) *ListLayersCommand {
	return &ListLayersCommand{cat: cat}
}

// Execute runs the list layers command
func (c *ListLayersCommand) Execute(ctx context.Context) ([]LayerEntry, error) {
	counts := c.cat.Data.LayerCounts()
	layers := c.cat.Data.ObservedLayers()
	entries := make([]LayerEntry, 0, len(layers))
	for _, l := range layers {
		entries = append(entries, LayerEntry{Layer: l, Count: counts[l.Key]})
	}
	return entries, nil
}
