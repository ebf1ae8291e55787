package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"patternmap/internal/adapters/tui/styles"
	"patternmap/internal/application"
)

// RenderDetail formats the detail panel of a pattern for the given width
func RenderDetail(d *application.Detail, width int) string {
	if d == nil {
		return RenderMuted(application.EmptyDetailText)
	}
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(styles.LayerColor(d.Layer.Color)).Bold(true).Render(d.ShortID))
	b.WriteString("  ")
	b.WriteString(styles.Title.UnsetMarginBottom().Render(d.Label))
	b.WriteString("\n")
	if d.Description != "" {
		b.WriteString(wrap.Render(RenderMuted(d.Description)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var badges []string
	for _, badge := range d.Badges {
		badges = append(badges, styles.Badge.Render(badge))
	}
	b.WriteString(wrap.Render(strings.Join(badges, "")))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionTitle.Render("Graph Metrics"))
	b.WriteString("\n")
	for _, m := range d.Metrics {
		fmt.Fprintf(&b, "  %s %s\n", styles.MetricLabel.Render(padRight(m.Label+":", 13)), styles.MetricValue.Render(m.Value))
	}

	for _, s := range d.Sections {
		b.WriteString("\n")
		b.WriteString(styles.SectionTitle.Render(s.Title))
		b.WriteString("\n")
		if s.IsList() {
			for _, item := range s.Items {
				b.WriteString(wrap.Render("  • " + item))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(wrap.Render(s.Text))
			b.WriteString("\n")
		}
	}

	if d.HasConnections() {
		b.WriteString("\n")
		b.WriteString(styles.SectionTitle.Render("Connections"))
		b.WriteString("\n")
		writeRows(&b, "Outgoing", d.Outgoing)
		writeRows(&b, "Incoming", d.Incoming)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRows(b *strings.Builder, title string, rows []application.ConnectionRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", styles.InputLabel.Render(fmt.Sprintf("%s (%d)", title, len(rows))))
	for _, r := range rows {
		fmt.Fprintf(b, "    %s %s\n", r.Label, RenderMuted("("+r.WeightText()+")"))
	}
}
