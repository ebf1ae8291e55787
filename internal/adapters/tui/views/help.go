package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"patternmap/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	layers []string // Layer display names in key order
}

// NewHelpModel creates a new help view model listing the layer keys
func NewHelpModel(layers []string) *HelpModel {
	return &HelpModel{layers: layers}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToExplorerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Pattern Map Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Explore a graph of design patterns by layer, search and neighborhood"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous / next page"))
	b.WriteString(helpLine("tab", "Scroll the detail panel (tab or esc to return)"))
	b.WriteString("\n")

	// Actions section
	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter / space", "Select pattern and highlight its neighbors"))
	b.WriteString(helpLine("esc", "Clear selection"))
	b.WriteString(helpLine("/", "Search labels, ids and aliases"))
	b.WriteString(helpLine("1-9", "Toggle layer filter"))
	b.WriteString(helpLine("0", "Show all layers"))
	b.WriteString(helpLine("y", "Copy short id to clipboard"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	if len(m.layers) > 0 {
		b.WriteString(styles.InputLabel.Render("Layers"))
		b.WriteString("\n")
		for i, name := range m.layers {
			if i >= 9 {
				break
			}
			b.WriteString(styles.MutedText.Render("  " + string(rune('1'+i)) + "  " + name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
