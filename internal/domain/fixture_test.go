package domain

import "testing"

func pattern(id, label, layer string, aliases ...string) Pattern {
	return Pattern{ShortID: id, ID: id + "-long", Label: label, Layer: layer, Aliases: aliases}
}

func metricsFor(ps []Pattern) map[string]Metrics {
	m := make(map[string]Metrics, len(ps))
	for i, p := range ps {
		m[p.ShortID] = Metrics{PageRank: 0.01 * float64(i+1), WeightedOut: 1, WeightedIn: 1}
	}
	return m
}

// newTestEngine builds A->B (0.8), C->A (0.5), B->D (0.3), E isolated.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	patterns := []Pattern{
		pattern("A", "Alpha Router", "orchestration", "Smart Routing"),
		pattern("B", "Beta Planner", "orchestration"),
		pattern("C", "Gamma Memory", "knowledge", "Context Store"),
		pattern("D", "Delta Guard", "safety"),
		pattern("E", "Epsilon Cache", "knowledge"),
	}
	links := []Link{
		{Source: "A", Target: "B", Weight: 0.8},
		{Source: "C", Target: "A", Weight: 0.5},
		{Source: "B", Target: "D", Weight: 0.3},
	}
	layers := []Layer{
		{Key: "orchestration", Name: "Orchestration", Color: "#7c3aed"},
		{Key: "knowledge", Name: "Knowledge", Color: "#059669"},
		{Key: "safety", Name: "Safety", Color: "#dc2626"},
	}
	return mustEngine(t, patterns, links, layers)
}

func mustEngine(t *testing.T, patterns []Pattern, links []Link, layers []Layer) *Engine {
	t.Helper()

	data, err := NewDataset(patterns, links, metricsFor(patterns), layers)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	idx, err := BuildAdjacency(data.Patterns, data.Links)
	if err != nil {
		t.Fatalf("BuildAdjacency() error = %v", err)
	}
	return NewEngine(data, idx)
}

// assertEdgeInvariant checks edge.visible == source.visible && target.visible
func assertEdgeInvariant(t *testing.T, e *Engine) {
	t.Helper()

	nodes, edges := e.Flags()
	for i, l := range e.Dataset().Links {
		want := nodes[e.Dataset().Index(l.Source)].Visible && nodes[e.Dataset().Index(l.Target)].Visible
		if edges[i].Visible != want {
			t.Errorf("edge %d (%s->%s) visible = %v, want %v", i, l.Source, l.Target, edges[i].Visible, want)
		}
	}
}

func idsWhere(e *Engine, pred func(NodeFlags) bool) []string {
	var ids []string
	nodes, _ := e.Flags()
	for i, n := range nodes {
		if pred(n) {
			ids = append(ids, e.Dataset().Patterns[i].ShortID)
		}
	}
	return ids
}
