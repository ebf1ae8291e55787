package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"patternmap/internal/application"
	"patternmap/internal/application/commands"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, cat *application.Catalog) {
	s.AddTool(listPatternsTool(), listPatternsHandler(cat))
	s.AddTool(listLayersTool(), listLayersHandler(cat))
	s.AddTool(showPatternTool(), showPatternHandler(cat))
	s.AddTool(searchTool(), searchHandler(cat))
	s.AddTool(neighborsTool(), neighborsHandler(cat))
	s.AddTool(viewTool(), viewHandler(cat))
}

// --- list_patterns ---

func listPatternsTool() mcp.Tool {
	return mcp.NewTool("list_patterns",
		mcp.WithDescription("List the patterns of the catalog with their short ids, labels and layers."),
		mcp.WithString("layers",
			mcp.Description("Comma-separated layer keys to keep (e.g. orchestration,safety). Omit to list every pattern."),
		),
	)
}

func listPatternsHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		layers := application.SplitList(req.GetString("layers", ""))

		patterns, err := commands.NewListPatternsCommand(cat, layers).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(patterns, func(p application.Pattern) string {
			return fmt.Sprintf("%s  %s  [%s]", p.ShortID, p.Label, p.Layer)
		})
	}
}

// --- list_layers ---

func listLayersTool() mcp.Tool {
	return mcp.NewTool("list_layers",
		mcp.WithDescription("List the layers of the catalog in legend order with pattern counts."),
	)
}

func listLayersHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewListLayersCommand(cat).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, func(e commands.LayerEntry) string {
			return fmt.Sprintf("%s  %s  (%d)", e.Key, e.Name, e.Count)
		})
	}
}

// --- show_pattern ---

func showPatternTool() mcp.Tool {
	return mcp.NewTool("show_pattern",
		mcp.WithDescription("Show a pattern's detail: badges, graph metrics, optional fields and weighted connections."),
		mcp.WithString("id",
			mcp.Description("Short id (e.g. RT) or long id (e.g. routing)"),
			mcp.Required(),
		),
	)
}

func showPatternHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, err := commands.NewShowPatternCommand(cat, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatDetail(d)), nil
	}
}

// --- search_patterns ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_patterns",
		mcp.WithDescription("Search patterns by label, id, short id or alias. Matches are case-insensitive substrings, best first."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		results, err := commands.NewSearchCommand(cat, req.GetString("query", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.Pattern.ShortID, r.Pattern.Label, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- neighbors ---

func neighborsTool() mcp.Tool {
	return mcp.NewTool("neighbors",
		mcp.WithDescription("List a pattern's outgoing and incoming links, strongest first, with its connection count."),
		mcp.WithString("id",
			mcp.Description("Short id or long id of the pattern"),
			mcp.Required(),
		),
	)
}

func neighborsHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, err := commands.NewShowPatternCommand(cat, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  %s  connections: %d\n", d.ShortID, d.Label, d.ConnectionCount)
		writeConnections(&sb, "Outgoing", d.Outgoing)
		writeConnections(&sb, "Incoming", d.Incoming)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- view ---

func viewTool() mcp.Tool {
	return mcp.NewTool("view",
		mcp.WithDescription("Apply a layer filter, a search and a selection, and report which patterns are visible, selected or dimmed."),
		mcp.WithString("select",
			mcp.Description("Pattern to select. Omit for no selection."),
		),
		mcp.WithString("layers",
			mcp.Description("Comma-separated layer keys to keep. Omit to keep every layer."),
		),
		mcp.WithString("query",
			mcp.Description("Search text. Omit to match every pattern."),
		),
	)
}

func viewHandler(cat *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewViewCommand(cat,
			req.GetString("select", ""),
			application.SplitList(req.GetString("layers", "")),
			req.GetString("query", ""),
		)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatView(cat, res)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatDetail(d *application.Detail) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", d.ShortID, d.Label)
	if d.Description != "" {
		fmt.Fprintf(&sb, "%s\n", d.Description)
	}
	fmt.Fprintf(&sb, "\n%s\n", strings.Join(d.Badges, " | "))
	for _, m := range d.Metrics {
		fmt.Fprintf(&sb, "%s: %s\n", m.Label, m.Value)
	}
	for _, s := range d.Sections {
		fmt.Fprintf(&sb, "\n## %s\n", s.Title)
		if s.IsList() {
			for _, item := range s.Items {
				fmt.Fprintf(&sb, "- %s\n", item)
			}
		} else {
			fmt.Fprintf(&sb, "%s\n", s.Text)
		}
	}
	if d.HasConnections() {
		sb.WriteString("\n## Connections\n")
		writeConnections(&sb, "Outgoing", d.Outgoing)
		writeConnections(&sb, "Incoming", d.Incoming)
	}
	return sb.String()
}

func writeConnections(sb *strings.Builder, title string, rows []application.ConnectionRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d)\n", title, len(rows))
	for _, r := range rows {
		fmt.Fprintf(sb, "  %s  %s  (%s)\n", r.ShortID, r.Label, r.WeightText())
	}
}

func formatView(cat *application.Catalog, res *commands.ViewResult) string {
	var sb strings.Builder
	nodes, edges := res.Engine.VisibleCount()
	fmt.Fprintf(&sb, "visible: %d patterns, %d links\n", nodes, edges)
	if res.State.SelectedID != "" {
		fmt.Fprintf(&sb, "selected: %s\n", res.State.SelectedID)
	}
	if len(res.State.ActiveLayers) > 0 {
		fmt.Fprintf(&sb, "layers: %s\n", strings.Join(res.State.ActiveLayers, ", "))
	}
	if res.State.SearchQuery != "" {
		fmt.Fprintf(&sb, "query: %s\n", res.State.SearchQuery)
	}
	sb.WriteByte('\n')

	for i, p := range cat.Data.Patterns {
		f := res.Nodes[i]
		if !f.Visible {
			continue
		}
		mark := " "
		switch {
		case f.Selected:
			mark = "*"
		case f.Dimmed:
			mark = "."
		}
		fmt.Fprintf(&sb, "%s %s  %s\n", mark, p.ShortID, p.Label)
	}
	return sb.String()
}
