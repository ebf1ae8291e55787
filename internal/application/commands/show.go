package commands

import (
	"context"

	"patternmap/internal/application"
)

// ShowPatternCommand builds the detail panel of one pattern
type ShowPatternCommand struct {
	cat *application.Catalog
	ID  string
}

// NewShowPatternCommand creates a new ShowPatternCommand
func NewShowPatternCommand(cat *application.Catalog, id string) *ShowPatternCommand {
	return &ShowPatternCommand{
		cat: cat,
		ID:  id,
	}
}

// Execute runs the show command
func (c *ShowPatternCommand) Execute(ctx context.Context) (*application.Detail, error) {
	if err := application.ValidateRequired("patternID", c.ID); err != nil {
		return nil, err
	}
	id, err := c.cat.Resolve(c.ID)
	if err != nil {
		return nil, err
	}
	return application.BuildDetail(c.cat.NewEngine(), id)
}
