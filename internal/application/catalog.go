package application

import (
	"context"
	"fmt"
	"strings"

	"patternmap/internal/domain"
	"patternmap/internal/ports"
)

// Catalog is the immutable, shareable part of an explorer: the validated
// dataset and its adjacency index. Engines built from it hold the view state.
type Catalog struct {
	Data  *domain.Dataset
	Index *domain.AdjacencyIndex
}

// NewCatalog indexes a validated dataset
func NewCatalog(data *domain.Dataset) (*Catalog, error) {
	idx, err := domain.BuildAdjacency(data.Patterns, data.Links)
	if err != nil {
		return nil, fmt.Errorf("building adjacency index: %w", err)
	}
	return &Catalog{Data: data, Index: idx}, nil
}

// OpenCatalog loads a dataset from source and indexes it
func OpenCatalog(ctx context.Context, source ports.DatasetSource) (*Catalog, error) {
	data, err := source.Load(ctx)
	if err != nil {
		return nil, &LoadError{Source: source.Describe(), Err: err}
	}
	cat, err := NewCatalog(data)
	if err != nil {
		return nil, &LoadError{Source: source.Describe(), Err: err}
	}
	return cat, nil
}

// NewEngine creates a fresh engine with an empty view state
func (c *Catalog) NewEngine() *domain.Engine {
	return domain.NewEngine(c.Data, c.Index)
}

// Resolve maps a user-supplied reference to a short id. It accepts the short
// id itself, the short id in any case, or the long id.
func (c *Catalog) Resolve(ref string) (string, error) {
	if _, err := c.Data.Pattern(ref); err == nil {
		return ref, nil
	}
	for _, p := range c.Data.Patterns {
		if strings.EqualFold(p.ShortID, ref) || p.ID == ref {
			return p.ShortID, nil
		}
	}
	return "", &domain.NotFoundError{ID: ref}
}
