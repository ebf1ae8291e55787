package domain

import "strings"

// NodeFlags are the derived view flags of one pattern
type NodeFlags struct {
	Visible  bool
	Selected bool
	Dimmed   bool
}

// EdgeFlags are the derived view flags of one link
type EdgeFlags struct {
	Visible     bool
	Highlighted bool
	Dimmed      bool
}

// ViewState is the user-driven input to flag derivation
type ViewState struct {
	SelectedID   string // Empty when nothing is selected
	ActiveLayers []string
	SearchQuery  string // Case-folded
}

// Engine owns the view state of one explorer session and derives node and
// edge flags from it. Not safe for concurrent use; build one per session.
type Engine struct {
	data  *Dataset
	index *AdjacencyIndex

	selected string
	layers   map[string]bool
	query    string

	haystacks [][]string // Lowercased search texts, parallel to data.Patterns
	ends      [][2]int   // Source and target positions, parallel to data.Links
	nodes     []NodeFlags
	edges     []EdgeFlags
}

// NewEngine creates an engine with an empty view state: everything visible,
// nothing selected, dimmed or highlighted.
func NewEngine(data *Dataset, index *AdjacencyIndex) *Engine {
	e := &Engine{
		data:      data,
		index:     index,
		layers:    make(map[string]bool),
		haystacks: make([][]string, len(data.Patterns)),
		nodes:     make([]NodeFlags, len(data.Patterns)),
		edges:     make([]EdgeFlags, len(data.Links)),
		ends:      make([][2]int, len(data.Links)),
	}
	for i, l := range data.Links {
		e.ends[i] = [2]int{data.Index(l.Source), data.Index(l.Target)}
	}
	for i := range data.Patterns {
		texts := data.Patterns[i].searchText()
		for j, t := range texts {
			texts[j] = strings.ToLower(t)
		}
		e.haystacks[i] = texts
	}
	e.recomputeVisibility()
	return e
}

// Dataset returns the catalog the engine reads from
func (e *Engine) Dataset() *Dataset { return e.data }

// Index returns the adjacency index the engine consults
func (e *Engine) Index() *AdjacencyIndex { return e.index }

// Select marks id as the selected pattern and dims everything outside its
// neighborhood. Unknown ids leave the state untouched.
func (e *Engine) Select(id string) error {
	nb, err := e.index.Neighbors(id)
	if err != nil {
		return err
	}
	e.selected = id
	for i := range e.data.Patterns {
		sid := e.data.Patterns[i].ShortID
		e.nodes[i].Selected = sid == id
		e.nodes[i].Dimmed = !(sid == id || nb.Outgoing.Has(sid) || nb.Incoming.Has(sid))
	}
	for i, l := range e.data.Links {
		touches := l.Touches(id)
		e.edges[i].Highlighted = touches
		e.edges[i].Dimmed = !touches
	}
	return nil
}

// Clear drops the selection. Idempotent.
func (e *Engine) Clear() {
	e.selected = ""
	for i := range e.nodes {
		e.nodes[i].Selected = false
		e.nodes[i].Dimmed = false
	}
	for i := range e.edges {
		e.edges[i].Highlighted = false
		e.edges[i].Dimmed = false
	}
}

// ToggleLayerFilter adds the layer to the active filter set if absent,
// otherwise removes it. Applying it twice restores the prior state.
func (e *Engine) ToggleLayerFilter(layer string) error {
	if err := e.checkLayer(layer); err != nil {
		return err
	}
	if e.layers[layer] {
		delete(e.layers, layer)
	} else {
		e.layers[layer] = true
	}
	e.recomputeVisibility()
	return nil
}

// SetLayerFilters replaces the active filter set. An empty set disables layer filtering.
func (e *Engine) SetLayerFilters(layers []string) error {
	for _, l := range layers {
		if err := e.checkLayer(l); err != nil {
			return err
		}
	}
	e.layers = make(map[string]bool, len(layers))
	for _, l := range layers {
		e.layers[l] = true
	}
	e.recomputeVisibility()
	return nil
}

// SetSearchQuery stores the case-folded query. An empty query passes every pattern.
func (e *Engine) SetSearchQuery(text string) {
	e.query = strings.ToLower(text)
	e.recomputeVisibility()
}

func (e *Engine) checkLayer(layer string) error {
	if !e.data.HasLayer(layer) {
		return &InvalidInputError{Field: "layer", Value: layer, Reason: "no pattern carries this layer"}
	}
	return nil
}

// recomputeVisibility derives node visibility first, then edge visibility
// from the endpoints. Selection flags are left as they are.
func (e *Engine) recomputeVisibility() {
	filtered := len(e.layers) > 0
	for i := range e.data.Patterns {
		layerPasses := !filtered || e.layers[e.data.Patterns[i].Layer]
		e.nodes[i].Visible = layerPasses && e.searchPasses(i)
	}
	for i, end := range e.ends {
		e.edges[i].Visible = e.nodes[end[0]].Visible && e.nodes[end[1]].Visible
	}
}

func (e *Engine) searchPasses(i int) bool {
	if e.query == "" {
		return true
	}
	for _, t := range e.haystacks[i] {
		if strings.Contains(t, e.query) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the pattern at position i passes the current search
func (e *Engine) MatchesQuery(i int) bool {
	return e.searchPasses(i)
}

// Selected returns the selected id and whether a selection exists
func (e *Engine) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// ActiveLayers returns the active layer keys in legend order
func (e *Engine) ActiveLayers() []string {
	var keys []string
	for _, l := range e.data.Layers {
		if e.layers[l.Key] {
			keys = append(keys, l.Key)
		}
	}
	return keys
}

// LayerActive reports whether a layer key is in the active filter set
func (e *Engine) LayerActive(key string) bool {
	return e.layers[key]
}

// Query returns the case-folded search query
func (e *Engine) Query() string { return e.query }

// State returns a snapshot of the view state
func (e *Engine) State() ViewState {
	return ViewState{
		SelectedID:   e.selected,
		ActiveLayers: e.ActiveLayers(),
		SearchQuery:  e.query,
	}
}

// Flags returns copies of the node and edge flags, parallel to
// Dataset.Patterns and Dataset.Links.
func (e *Engine) Flags() ([]NodeFlags, []EdgeFlags) {
	nodes := make([]NodeFlags, len(e.nodes))
	copy(nodes, e.nodes)
	edges := make([]EdgeFlags, len(e.edges))
	copy(edges, e.edges)
	return nodes, edges
}

// Node returns the flags of the pattern at position i
func (e *Engine) Node(i int) NodeFlags { return e.nodes[i] }

// Edge returns the flags of the link at position i
func (e *Engine) Edge(i int) EdgeFlags { return e.edges[i] }

// VisibleCount returns the number of visible patterns and links
func (e *Engine) VisibleCount() (nodes, edges int) {
	for _, n := range e.nodes {
		if n.Visible {
			nodes++
		}
	}
	for _, ed := range e.edges {
		if ed.Visible {
			edges++
		}
	}
	return nodes, edges
}
