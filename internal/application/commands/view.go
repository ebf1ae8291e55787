package commands

import (
	"context"

	"patternmap/internal/application"
	"patternmap/internal/domain"
)

// ViewResult is the engine after a view was applied, with a flag snapshot
type ViewResult struct {
	Engine *domain.Engine
	State  domain.ViewState
	Nodes  []domain.NodeFlags
	Edges  []domain.EdgeFlags
}

// ViewCommand rebuilds a view from its three inputs on a fresh engine.
// Layers are applied first, then the query, then the selection.
type ViewCommand struct {
	cat    *application.Catalog
	Select string
	Layers []string
	Query  string
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cat *application.Catalog, selectID string, layers []string, query string) *ViewCommand {
	return &ViewCommand{
		cat:    cat,
		Select: selectID,
		Layers: layers,
		Query:  query,
	}
}

// Execute runs the view command
func (c *ViewCommand) Execute(ctx context.Context) (*ViewResult, error) {
	e := c.cat.NewEngine()

	if len(c.Layers) > 0 {
		if err := e.SetLayerFilters(c.Layers); err != nil {
			return nil, err
		}
	}
	e.SetSearchQuery(c.Query)
	if c.Select != "" {
		id, err := c.cat.Resolve(c.Select)
		if err != nil {
			return nil, err
		}
		if err := e.Select(id); err != nil {
			return nil, err
		}
	}

	nodes, edges := e.Flags()
	return &ViewResult{
		Engine: e,
		State:  e.State(),
		Nodes:  nodes,
		Edges:  edges,
	}, nil
}
