package domain

// Radius sizing for rendered nodes
const (
	BaseRadius  = 15.0
	RadiusScale = 100.0
)

// Layer is a classification key grouping patterns for filtering and legend coloring
type Layer struct {
	Key   string `json:"key"`   // e.g., "orchestration"
	Name  string `json:"name"`  // e.g., "Orchestration"
	Color string `json:"color"` // e.g., "#7C3AED"
}

// Metrics holds the precomputed graph metrics for one pattern
type Metrics struct {
	PageRank    float64
	WeightedOut float64
	WeightedIn  float64
}

// Pattern is a vertex of the pattern graph
type Pattern struct {
	ShortID       string // Unique identity, e.g. "RT"
	ID            string // Long identifier, e.g. "routing"
	Label         string
	Layer         string // Layer key
	Description   string
	Compute       string
	State         string
	SafetySurface string
	Aliases       []string
	Pros          []string
	Cons          []string
	Fields        []Field // Optional free-form fields, ordered by FieldKey
	Radius        float64 // Derived from PageRank at load
}

// Field returns the optional field with the given key, if present
func (p *Pattern) Field(key FieldKey) (Field, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// searchText returns the values matched by text search
func (p *Pattern) searchText() []string {
	texts := make([]string, 0, 3+len(p.Aliases))
	texts = append(texts, p.Label, p.ID, p.ShortID)
	return append(texts, p.Aliases...)
}

// Link is a directed, weighted edge. Its identity is its position in Dataset.Links.
type Link struct {
	Source string
	Target string
	Weight float64
}

// Touches reports whether id is the source or the target of the link
func (l Link) Touches(id string) bool {
	return l.Source == id || l.Target == id
}

// RadiusFor returns the rendered node radius for a PageRank score
func RadiusFor(pageRank float64) float64 {
	return BaseRadius + pageRank*RadiusScale
}
