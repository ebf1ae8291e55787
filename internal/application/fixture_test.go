package application

import (
	"testing"

	"patternmap/internal/domain"
)

// testCatalog builds RT->PL (0.9), RT->GS (0.4), MA->RT (0.6), CM isolated.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	patterns := []domain.Pattern{
		{
			ShortID: "RT", ID: "routing", Label: "Routing", Layer: "orchestration",
			Description: "Dispatch requests to specialists",
			Compute:     "low", State: "stateless", SafetySurface: "medium",
			Aliases: []string{"Intent Dispatch"},
			Pros:    []string{"cheap"},
			Cons:    []string{"misroutes"},
			Fields: []domain.Field{
				domain.TextField(domain.FieldWhenToUse, "many specialists"),
				domain.ListField(domain.FieldRisks, []string{"drift", "loops"}),
			},
		},
		{ShortID: "PL", ID: "planning", Label: "Planning", Layer: "orchestration"},
		{ShortID: "GS", ID: "guardrails", Label: "Guardrails", Layer: "safety"},
		{ShortID: "MA", ID: "multi-agent", Label: "Multi-Agent", Layer: "orchestration"},
		{ShortID: "CM", ID: "context-memory", Label: "Context Memory", Layer: "knowledge"},
	}
	links := []domain.Link{
		{Source: "RT", Target: "PL", Weight: 0.9},
		{Source: "RT", Target: "GS", Weight: 0.4},
		{Source: "MA", Target: "RT", Weight: 0.6},
	}
	metrics := map[string]domain.Metrics{
		"RT": {PageRank: 0.1234, WeightedOut: 1.3, WeightedIn: 0.6},
		"PL": {PageRank: 0.05},
		"GS": {PageRank: 0.04},
		"MA": {PageRank: 0.03},
		"CM": {PageRank: 0.02},
	}
	layers := []domain.Layer{
		{Key: "orchestration", Name: "Orchestration", Color: "#7C3AED"},
		{Key: "knowledge", Name: "Knowledge & Memory", Color: "#10B981"},
		{Key: "safety", Name: "Safety & Governance", Color: "#EF4444"},
		{Key: "operations", Name: "Operations", Color: "#6B7280"},
	}

	data, err := domain.NewDataset(patterns, links, metrics, layers)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	cat, err := NewCatalog(data)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}
