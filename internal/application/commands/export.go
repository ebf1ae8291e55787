package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"patternmap/internal/application"
	"patternmap/internal/ports"
)

// ExportCommand renders a view as a self-contained HTML page on disk
type ExportCommand struct {
	view     *ViewCommand
	renderer ports.PageRenderer
	opener   ports.BrowserOpener
	Output   string
	Options  ports.PageOptions
	Open     bool
}

// NewExportCommand creates a new ExportCommand. opener may be nil when Open is false.
func NewExportCommand(
	view *ViewCommand,
	renderer ports.PageRenderer,
	opener ports.BrowserOpener,
	output string,
	opts ports.PageOptions,
	open bool,
) *ExportCommand {
	return &ExportCommand{
		view:     view,
		renderer: renderer,
		opener:   opener,
		Output:   output,
		Options:  opts,
		Open:     open,
	}
}

// Execute writes the page and returns its absolute path
func (c *ExportCommand) Execute(ctx context.Context) (string, error) {
	if err := application.ValidateRequired("output", c.Output); err != nil {
		return "", err
	}

	res, err := c.view.Execute(ctx)
	if err != nil {
		return "", err
	}

	path, err := filepath.Abs(c.Output)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.renderer.Render(f, res.Engine, c.Options); err != nil {
		f.Close()
		return "", fmt.Errorf("rendering page: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if c.Open && c.opener != nil {
		if err := c.opener.Open(path); err != nil {
			return path, fmt.Errorf("opening browser: %w", err)
		}
	}
	return path, nil
}
