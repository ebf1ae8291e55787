package domain

import (
	"fmt"
	"sort"
)

// IDSet is a set of pattern short ids
type IDSet map[string]struct{}

// NewIDSet builds a set from ids
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of distinct ids
func (s IDSet) Len() int { return len(s) }

// Sorted returns the ids in lexical order
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s IDSet) clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Neighbors holds the distinct neighbor ids of one pattern by direction
type Neighbors struct {
	Outgoing IDSet
	Incoming IDSet
}

// Count returns |Outgoing| + |Incoming|. A neighbor linked both ways counts twice.
func (n Neighbors) Count() int {
	return n.Outgoing.Len() + n.Incoming.Len()
}

// AdjacencyIndex answers neighbor queries in constant time. Immutable after build.
type AdjacencyIndex struct {
	out map[string]IDSet
	in  map[string]IDSet
}

// BuildAdjacency indexes every link by direction. Every pattern gets an entry,
// isolated ones with empty sets. A link to an unknown pattern fails the build.
func BuildAdjacency(patterns []Pattern, links []Link) (*AdjacencyIndex, error) {
	idx := &AdjacencyIndex{
		out: make(map[string]IDSet, len(patterns)),
		in:  make(map[string]IDSet, len(patterns)),
	}
	for _, p := range patterns {
		idx.out[p.ShortID] = IDSet{}
		idx.in[p.ShortID] = IDSet{}
	}
	for i, l := range links {
		out, ok := idx.out[l.Source]
		if !ok {
			return nil, &IntegrityError{Subject: linkSubject(i, l), Reason: "unknown source " + l.Source}
		}
		in, ok := idx.in[l.Target]
		if !ok {
			return nil, &IntegrityError{Subject: linkSubject(i, l), Reason: "unknown target " + l.Target}
		}
		out[l.Target] = struct{}{}
		in[l.Source] = struct{}{}
	}
	return idx, nil
}

// Neighbors returns copies of the outgoing and incoming sets for id
func (x *AdjacencyIndex) Neighbors(id string) (Neighbors, error) {
	out, ok := x.out[id]
	if !ok {
		return Neighbors{}, &NotFoundError{ID: id}
	}
	return Neighbors{Outgoing: out.clone(), Incoming: x.in[id].clone()}, nil
}

// Related reports whether other is id itself or one of its neighbors
func (x *AdjacencyIndex) Related(id, other string) bool {
	if id == other {
		return true
	}
	return x.out[id].Has(other) || x.in[id].Has(other)
}

// Len returns the number of indexed patterns
func (x *AdjacencyIndex) Len() int { return len(x.out) }

func linkSubject(i int, l Link) string {
	return fmt.Sprintf("link %d (%s -> %s)", i, l.Source, l.Target)
}
