package htmlview

import (
	"strings"

	"patternmap/internal/domain"
)

// NodeView carries one pattern's flags in dataset order
type NodeView struct {
	Visible  bool `json:"visible"`
	Selected bool `json:"selected"`
	Dimmed   bool `json:"dimmed"`
}

// LinkView carries one link's flags in dataset order
type LinkView struct {
	Visible     bool `json:"visible"`
	Highlighted bool `json:"highlighted"`
	Dimmed      bool `json:"dimmed"`
}

// StateView is the JSON form of the engine's view state
type StateView struct {
	Selected string   `json:"selected,omitempty"`
	Layers   []string `json:"layers"`
	Query    string   `json:"query"`
}

// View is the derived flag snapshot the page applies to its elements
type View struct {
	State        StateView  `json:"state"`
	Nodes        []NodeView `json:"nodes"`
	Links        []LinkView `json:"links"`
	VisibleNodes int        `json:"visibleNodes"`
	VisibleLinks int        `json:"visibleLinks"`
	Detail       string     `json:"detail,omitempty"` // Rendered detail fragment for the selection
}

// NewView snapshots the engine's flags
func NewView(e *domain.Engine) *View {
	nodes, edges := e.Flags()
	state := e.State()

	v := &View{
		State: StateView{
			Selected: state.SelectedID,
			Layers:   state.ActiveLayers,
			Query:    state.SearchQuery,
		},
		Nodes: make([]NodeView, len(nodes)),
		Links: make([]LinkView, len(edges)),
	}
	if v.State.Layers == nil {
		v.State.Layers = []string{}
	}
	for i, n := range nodes {
		v.Nodes[i] = NodeView{Visible: n.Visible, Selected: n.Selected, Dimmed: n.Dimmed}
	}
	for i, ed := range edges {
		v.Links[i] = LinkView{Visible: ed.Visible, Highlighted: ed.Highlighted, Dimmed: ed.Dimmed}
	}
	v.VisibleNodes, v.VisibleLinks = e.VisibleCount()
	return v
}

// Node is a pattern as drawn on the page. Positions belong to the browser simulation.
type Node struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Layer  string  `json:"layer"`
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`

	// Static exports only: case-folded label, id, short id and aliases
	Search []string `json:"search,omitempty"`
}

// Link is an edge as drawn on the page
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// LegendEntry is a layer in the legend. Only layers with patterns get a filter button.
type LegendEntry struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Graph is the data embedded in a rendered page
type Graph struct {
	Nodes  []Node        `json:"nodes"`
	Links  []Link        `json:"links"`
	Legend []LegendEntry `json:"legend"`
	Base   *View         `json:"base"`

	// Static exports only: one precomputed view per pattern, and detail fragments
	Selections map[string]*View  `json:"selections,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
}

// NewGraph converts the dataset into drawable nodes, links and legend
func NewGraph(d *domain.Dataset) *Graph {
	g := &Graph{
		Nodes: make([]Node, len(d.Patterns)),
		Links: make([]Link, len(d.Links)),
	}
	for i, p := range d.Patterns {
		color := "#6B7280"
		if l, ok := d.Layer(p.Layer); ok && l.Color != "" {
			color = l.Color
		}
		g.Nodes[i] = Node{ID: p.ShortID, Label: p.Label, Layer: p.Layer, Color: color, Radius: p.Radius}
	}
	for i, l := range d.Links {
		g.Links[i] = Link{Source: l.Source, Target: l.Target, Weight: l.Weight}
	}
	counts := d.LayerCounts()
	for _, l := range d.Layers {
		g.Legend = append(g.Legend, LegendEntry{Key: l.Key, Name: l.Name, Color: l.Color, Count: counts[l.Key]})
	}
	return g
}

// attachSearchTerms gives every node the text the page matches searches against
func (g *Graph) attachSearchTerms(d *domain.Dataset) {
	for i, p := range d.Patterns {
		terms := make([]string, 0, 3+len(p.Aliases))
		for _, t := range append([]string{p.Label, p.ID, p.ShortID}, p.Aliases...) {
			terms = append(terms, strings.ToLower(t))
		}
		g.Nodes[i].Search = terms
	}
}
