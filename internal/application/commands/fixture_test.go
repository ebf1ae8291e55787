package commands

import (
	"testing"

	"patternmap/internal/application"
	"patternmap/internal/domain"
)

// testCatalog builds RT->PL (0.9), RT->GS (0.4), MA->RT (0.6).
func testCatalog(t *testing.T) *application.Catalog {
	t.Helper()

	patterns := []domain.Pattern{
		{ShortID: "RT", ID: "routing", Label: "Routing", Layer: "orchestration", Aliases: []string{"Intent Dispatch"}},
		{ShortID: "PL", ID: "planning", Label: "Planning", Layer: "orchestration"},
		{ShortID: "GS", ID: "guardrails", Label: "Guardrails", Layer: "safety"},
		{ShortID: "MA", ID: "multi-agent", Label: "Multi-Agent", Layer: "orchestration"},
	}
	links := []domain.Link{
		{Source: "RT", Target: "PL", Weight: 0.9},
		{Source: "RT", Target: "GS", Weight: 0.4},
		{Source: "MA", Target: "RT", Weight: 0.6},
	}
	metrics := map[string]domain.Metrics{"RT": {PageRank: 0.1}, "PL": {}, "GS": {}, "MA": {}}
	layers := []domain.Layer{
		{Key: "orchestration", Name: "Orchestration", Color: "#7C3AED"},
		{Key: "safety", Name: "Safety & Governance", Color: "#EF4444"},
		{Key: "operations", Name: "Operations", Color: "#6B7280"},
	}

	data, err := domain.NewDataset(patterns, links, metrics, layers)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	cat, err := application.NewCatalog(data)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}
