package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"patternmap/internal/application/commands"
	"patternmap/internal/ports"
)

// SourceResolver maps a dataset path to the loader for its format
type SourceResolver func(path string) (ports.DatasetSource, error)

// RegisterCatalogTools adds the catalog store tools to the MCP server.
// Importing replaces the stored catalog; the served catalog is unchanged
// until the server restarts.
func RegisterCatalogTools(s *server.MCPServer, store ports.CatalogStore, resolve SourceResolver) {
	s.AddTool(importTool(), importHandler(store, resolve))
	s.AddTool(catalogInfoTool(), catalogInfoHandler(store))
}

// --- import_catalog ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_catalog",
		mcp.WithDescription("Validate a dataset file (.json or .hcl) and store it in the local catalog database, replacing its previous contents."),
		mcp.WithString("path",
			mcp.Description("Path of the dataset to import. Omit to import the built-in sample catalog."),
		),
	)
}

func importHandler(store ports.CatalogStore, resolve SourceResolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := resolve(req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}

		info, err := commands.NewImportCatalogCommand(store, source).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Imported.\n" + formatInfo(info)), nil
	}
}

// --- catalog_info ---

func catalogInfoTool() mcp.Tool {
	return mcp.NewTool("catalog_info",
		mcp.WithDescription("Report what the local catalog database holds and where it was imported from."),
	)
}

func catalogInfoHandler(store ports.CatalogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := commands.NewCatalogInfoCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatInfo(info)), nil
	}
}

func formatInfo(info *ports.CatalogInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "path: %s\n", info.Path)
	fmt.Fprintf(&sb, "source: %s\n", info.Source)
	if !info.ImportedAt.IsZero() {
		fmt.Fprintf(&sb, "imported: %s\n", info.ImportedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "patterns: %d, links: %d, layers: %d\n", info.Patterns, info.Links, info.Layers)
	return sb.String()
}
