package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"patternmap/internal/application"
	"patternmap/internal/domain"
)

// testCatalog builds RT->PL (0.9), MA->RT (0.6), GS isolated.
func testCatalog(t *testing.T) *application.Catalog {
	t.Helper()

	patterns := []domain.Pattern{
		{ShortID: "RT", ID: "routing", Label: "Routing", Layer: "orchestration", Aliases: []string{"Smart Route Table"}},
		{ShortID: "PL", ID: "planning", Label: "Planning", Layer: "orchestration"},
		{ShortID: "MA", ID: "multi-agent", Label: "Multi-Agent", Layer: "orchestration"},
		{ShortID: "GS", ID: "guardrails", Label: "Guardrails", Layer: "safety"},
	}
	links := []domain.Link{
		{Source: "RT", Target: "PL", Weight: 0.9},
		{Source: "MA", Target: "RT", Weight: 0.6},
	}
	metrics := map[string]domain.Metrics{"RT": {PageRank: 0.1}, "PL": {}, "MA": {}, "GS": {}}
	layers := []domain.Layer{
		{Key: "orchestration", Name: "Orchestration", Color: "#7C3AED"},
		{Key: "safety", Name: "Safety & Governance", Color: "#EF4444"},
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

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers a message and returns the resulting command
func send(m tea.Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}
