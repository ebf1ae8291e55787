package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"patternmap/internal/adapters/source"
	"patternmap/internal/adapters/sqlite"
	"patternmap/internal/application"
	"patternmap/internal/domain"
)

func testCatalog(t *testing.T) *application.Catalog {
	t.Helper()

	patterns := []domain.Pattern{
		{ShortID: "RT", ID: "routing", Label: "Routing", Layer: "orchestration", Aliases: []string{"Intent Dispatch"},
			Pros: []string{"cheap"}},
		{ShortID: "PL", ID: "planning", Label: "Planning", Layer: "orchestration"},
		{ShortID: "GS", ID: "guardrails", Label: "Guardrails", Layer: "safety"},
		{ShortID: "CM", ID: "context-memory", Label: "Context Memory", Layer: "knowledge"},
	}
	links := []domain.Link{
		{Source: "RT", Target: "PL", Weight: 0.9},
		{Source: "RT", Target: "GS", Weight: 0.25},
		{Source: "GS", Target: "RT", Weight: 0.5},
	}
	metrics := map[string]domain.Metrics{"RT": {PageRank: 0.12}, "PL": {}, "GS": {}, "CM": {}}

	data, err := domain.NewDataset(patterns, links, metrics, nil)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	cat, err := application.NewCatalog(data)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestReadTools(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		args    map[string]any
		want    []string
		wantErr bool
	}{
		{
			name:    "list all",
			handler: listPatternsHandler(cat),
			want:    []string{"RT  Routing  [orchestration]", "CM  Context Memory  [knowledge]"},
		},
		{
			name:    "list by layer",
			handler: listPatternsHandler(cat),
			args:    map[string]any{"layers": "safety"},
			want:    []string{"GS  Guardrails"},
		},
		{
			name:    "list unknown layer",
			handler: listPatternsHandler(cat),
			args:    map[string]any{"layers": "bogus"},
			want:    []string{"unknown layer"},
			wantErr: true,
		},
		{
			name:    "layers",
			handler: listLayersHandler(cat),
			want:    []string{"orchestration  orchestration  (2)"},
		},
		{
			name:    "show",
			handler: showPatternHandler(cat),
			args:    map[string]any{"id": "routing"},
			want:    []string{"RT  Routing", "PageRank: 12.00%", "## Advantages", "Outgoing (2)", "PL  Planning  (0.90)"},
		},
		{
			name:    "show missing id",
			handler: showPatternHandler(cat),
			want:    []string{"pattern ID is required"},
			wantErr: true,
		},
		{
			name:    "show unknown",
			handler: showPatternHandler(cat),
			args:    map[string]any{"id": "ZZ"},
			want:    []string{"not found"},
			wantErr: true,
		},
		{
			name:    "search alias",
			handler: searchHandler(cat),
			args:    map[string]any{"query": "dispatch"},
			want:    []string{"RT  Routing  Intent Dispatch"},
		},
		{
			name:    "search no match",
			handler: searchHandler(cat),
			args:    map[string]any{"query": "zzz"},
			want:    []string{"No results found."},
		},
		{
			name:    "neighbors",
			handler: neighborsHandler(cat),
			args:    map[string]any{"id": "RT"},
			want:    []string{"connections: 3", "Outgoing (2)", "Incoming (1)", "GS  Guardrails  (0.50)"},
		},
		{
			name:    "view selection",
			handler: viewHandler(cat),
			args:    map[string]any{"select": "PL"},
			want:    []string{"selected: PL", "* PL  Planning", "  RT  Routing", ". GS  Guardrails"},
		},
		{
			name:    "view filtered",
			handler: viewHandler(cat),
			args:    map[string]any{"layers": "orchestration,safety", "query": "ing"},
			want:    []string{"visible: 2 patterns, 1 links", "layers: orchestration, safety"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, tt.handler, tt.args)
			if isErr != tt.wantErr {
				t.Errorf("IsError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("result missing %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestCatalogTools(t *testing.T) {
	store := sqlite.NewStore()
	if err := store.Open(filepath.Join(t.TempDir(), "catalog.db")); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	text, isErr := call(t, catalogInfoHandler(store), nil)
	if isErr || !strings.Contains(text, "patterns: 0") {
		t.Errorf("info before import = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, importHandler(store, source.ForPath), nil)
	if isErr {
		t.Fatalf("import failed: %s", text)
	}
	if !strings.Contains(text, "patterns: 20, links: 62") {
		t.Errorf("import result = %q", text)
	}

	text, isErr = call(t, importHandler(store, source.ForPath), map[string]any{"path": "catalog.yaml"})
	if !isErr || !strings.Contains(text, "unsupported catalog format") {
		t.Errorf("unsupported format = %q (error %v)", text, isErr)
	}
}
