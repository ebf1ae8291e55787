package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeighborSummary(t *testing.T) {
	t.Run("selection scenario", func(t *testing.T) {
		e := newTestEngine(t)

		s, err := e.NeighborSummary("A")
		if err != nil {
			t.Fatalf("NeighborSummary() error = %v", err)
		}
		if s.ConnectionCount != 2 {
			t.Errorf("ConnectionCount = %d, want 2", s.ConnectionCount)
		}
		if len(s.Outgoing) != 1 || s.Outgoing[0].Peer.ShortID != "B" || s.Outgoing[0].Link.Weight != 0.8 {
			t.Errorf("outgoing = %+v", s.Outgoing)
		}
		if len(s.Incoming) != 1 || s.Incoming[0].Peer.ShortID != "C" || s.Incoming[0].Index != 1 {
			t.Errorf("incoming = %+v", s.Incoming)
		}
	})

	t.Run("sorted by weight with parallel links kept", func(t *testing.T) {
		patterns := []Pattern{
			pattern("A", "Alpha", "x"),
			pattern("B", "Beta", "x"),
			pattern("C", "Gamma", "x"),
		}
		links := []Link{
			{Source: "A", Target: "B", Weight: 0.2},
			{Source: "A", Target: "C", Weight: 0.9},
			{Source: "A", Target: "B", Weight: 0.5},
			{Source: "B", Target: "A", Weight: 0.3},
		}
		e := mustEngine(t, patterns, links, nil)

		s, err := e.NeighborSummary("A")
		if err != nil {
			t.Fatalf("NeighborSummary() error = %v", err)
		}

		var weights []float64
		for _, c := range s.Outgoing {
			weights = append(weights, c.Link.Weight)
		}
		if diff := cmp.Diff([]float64{0.9, 0.5, 0.2}, weights); diff != "" {
			t.Errorf("outgoing weights mismatch (-want +got):\n%s", diff)
		}
		// Distinct neighbors: out {B, C}, in {B}
		if s.ConnectionCount != 3 {
			t.Errorf("ConnectionCount = %d, want 3", s.ConnectionCount)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		e := newTestEngine(t)
		if _, err := e.NeighborSummary("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("read only", func(t *testing.T) {
		e := newTestEngine(t)
		before := e.State()
		if _, err := e.NeighborSummary("B"); err != nil {
			t.Fatalf("NeighborSummary() error = %v", err)
		}
		if diff := cmp.Diff(before, e.State()); diff != "" {
			t.Errorf("state changed:\n%s", diff)
		}
	})
}
