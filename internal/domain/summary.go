package domain

import "sort"

// Connection is one link of a neighbor summary, seen from the summarized pattern
type Connection struct {
	Index int      // Position of the link in Dataset.Links
	Link  Link
	Peer  *Pattern // The pattern at the other end
}

// NeighborSummary lists the links of one pattern for the detail panel
type NeighborSummary struct {
	Pattern  *Pattern
	Metrics  Metrics
	Outgoing []Connection // Weight descending
	Incoming []Connection // Weight descending

	// ConnectionCount counts distinct neighbors per direction, so parallel
	// links to the same peer count once while each still gets its own row.
	ConnectionCount int
}

// NeighborSummary builds the read-only connection summary for id
func (e *Engine) NeighborSummary(id string) (*NeighborSummary, error) {
	p, err := e.data.Pattern(id)
	if err != nil {
		return nil, err
	}
	nb, err := e.index.Neighbors(id)
	if err != nil {
		return nil, err
	}

	s := &NeighborSummary{
		Pattern:         p,
		Metrics:         e.data.Metrics[id],
		ConnectionCount: nb.Count(),
	}
	for i, l := range e.data.Links {
		if l.Source == id {
			peer, _ := e.data.Pattern(l.Target)
			s.Outgoing = append(s.Outgoing, Connection{Index: i, Link: l, Peer: peer})
		}
		if l.Target == id {
			peer, _ := e.data.Pattern(l.Source)
			s.Incoming = append(s.Incoming, Connection{Index: i, Link: l, Peer: peer})
		}
	}
	sortByWeight(s.Outgoing)
	sortByWeight(s.Incoming)
	return s, nil
}

func sortByWeight(cs []Connection) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Link.Weight > cs[j].Link.Weight
	})
}
