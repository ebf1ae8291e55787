package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Border    = lipgloss.Color("#374151")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Pattern list styles
	NodeCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeSelected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	NodeDimmed = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	NodeID = lipgloss.NewStyle().
		Bold(true).
		Width(4)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	PanelFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Detail panel
	SectionTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Badge = lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Foreground(White).
		Padding(0, 1).
		MarginRight(1)

	MetricLabel = lipgloss.NewStyle().
			Foreground(Muted)

	MetricValue = lipgloss.NewStyle().
			Bold(true)

	// Filter bar
	FilterActive = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	FilterInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// LayerColor returns the legend color of a layer, or Muted when it has none
func LayerColor(hex string) lipgloss.Color {
	if hex == "" {
		return Muted
	}
	return lipgloss.Color(hex)
}

// Swatch renders a small block in the layer color
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(LayerColor(hex)).Render("●")
}
