package application

import (
	"fmt"

	"patternmap/internal/domain"
)

// EmptyDetailText is shown when no pattern is selected
const EmptyDetailText = "Select a pattern to view details"

// MetricTile is one labelled value in the metrics grid
type MetricTile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled block of the detail panel holding text or a list
type Section struct {
	Title string   `json:"title"`
	Text  string   `json:"text,omitempty"`  // Set for text-shaped fields
	Items []string `json:"items,omitempty"` // Set for list-shaped sections
}

// IsList reports whether the section renders as a list
func (s Section) IsList() bool {
	return s.Items != nil
}

// ConnectionRow is one link in the connections block
type ConnectionRow struct {
	ShortID string  `json:"short_id"`
	Label   string  `json:"label"`
	Weight  float64 `json:"weight"`
}

// WeightText formats the weight with two decimals
func (r ConnectionRow) WeightText() string {
	return fmt.Sprintf("%.2f", r.Weight)
}

// Detail is the ordered projection every surface renders for a pattern
type Detail struct {
	ShortID     string          `json:"short_id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Layer       domain.Layer    `json:"layer"`
	Badges      []string        `json:"badges"`
	Metrics     []MetricTile    `json:"metrics"`
	Sections    []Section       `json:"sections"`
	Outgoing    []ConnectionRow `json:"outgoing"` // Weight descending
	Incoming    []ConnectionRow `json:"incoming"` // Weight descending

	ConnectionCount int `json:"connection_count"`
}

// HasConnections reports whether the connections block is shown
func (d *Detail) HasConnections() bool {
	return len(d.Outgoing) > 0 || len(d.Incoming) > 0
}

// BuildDetail projects the pattern and its neighbor summary into panel order
func BuildDetail(e *domain.Engine, id string) (*Detail, error) {
	s, err := e.NeighborSummary(id)
	if err != nil {
		return nil, err
	}
	p := s.Pattern
	layer, ok := e.Dataset().Layer(p.Layer)
	if !ok {
		layer = domain.Layer{Key: p.Layer, Name: p.Layer}
	}

	d := &Detail{
		ShortID:     p.ShortID,
		Label:       p.Label,
		Description: p.Description,
		Layer:       layer,
		Badges: []string{
			e.Dataset().LayerName(p.Layer),
			"Compute: " + p.Compute,
			"State: " + p.State,
			"Safety: " + p.SafetySurface,
		},
		Metrics: []MetricTile{
			{Label: "PageRank", Value: fmt.Sprintf("%.2f%%", s.Metrics.PageRank*100)},
			{Label: "Out Weight", Value: fmt.Sprintf("%.2f", s.Metrics.WeightedOut)},
			{Label: "In Weight", Value: fmt.Sprintf("%.2f", s.Metrics.WeightedIn)},
			{Label: "Connections", Value: fmt.Sprintf("%d", s.ConnectionCount)},
		},
		ConnectionCount: s.ConnectionCount,
	}

	d.addList("Also Known As", p.Aliases)
	d.addList("Advantages", p.Pros)
	d.addList("Challenges", p.Cons)

	for _, key := range domain.FieldKeys() {
		f, ok := p.Field(key)
		if !ok || f.IsEmpty() {
			continue
		}
		if f.Shape == domain.ShapeList {
			d.addList(key.Title(), f.Items)
		} else {
			d.Sections = append(d.Sections, Section{Title: key.Title(), Text: f.Text})
		}
	}

	d.Outgoing = connectionRows(s.Outgoing)
	d.Incoming = connectionRows(s.Incoming)
	return d, nil
}

func (d *Detail) addList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	d.Sections = append(d.Sections, Section{Title: title, Items: items})
}

func connectionRows(cs []domain.Connection) []ConnectionRow {
	rows := make([]ConnectionRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, ConnectionRow{ShortID: c.Peer.ShortID, Label: c.Peer.Label, Weight: c.Link.Weight})
	}
	return rows
}
