package application

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildDetail(t *testing.T) {
	cat := testCatalog(t)

	d, err := BuildDetail(cat.NewEngine(), "RT")
	if err != nil {
		t.Fatalf("BuildDetail() error = %v", err)
	}

	t.Run("badges", func(t *testing.T) {
		want := []string{"Orchestration", "Compute: low", "State: stateless", "Safety: medium"}
		if diff := cmp.Diff(want, d.Badges); diff != "" {
			t.Errorf("badges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("metric tiles", func(t *testing.T) {
		want := []MetricTile{
			{Label: "PageRank", Value: "12.34%"},
			{Label: "Out Weight", Value: "1.30"},
			{Label: "In Weight", Value: "0.60"},
			{Label: "Connections", Value: "3"},
		}
		if diff := cmp.Diff(want, d.Metrics); diff != "" {
			t.Errorf("metrics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("section order", func(t *testing.T) {
		var titles []string
		for _, s := range d.Sections {
			titles = append(titles, s.Title)
		}
		want := []string{"Also Known As", "Advantages", "Challenges", "When To Use", "Risks"}
		if diff := cmp.Diff(want, titles); diff != "" {
			t.Errorf("sections mismatch (-want +got):\n%s", diff)
		}
		if d.Sections[3].IsList() || d.Sections[3].Text != "many specialists" {
			t.Errorf("when_to_use section = %+v", d.Sections[3])
		}
		if !d.Sections[4].IsList() {
			t.Error("risks should render as a list")
		}
	})

	t.Run("connections by weight", func(t *testing.T) {
		want := []ConnectionRow{
			{ShortID: "PL", Label: "Planning", Weight: 0.9},
			{ShortID: "GS", Label: "Guardrails", Weight: 0.4},
		}
		if diff := cmp.Diff(want, d.Outgoing); diff != "" {
			t.Errorf("outgoing mismatch (-want +got):\n%s", diff)
		}
		if len(d.Incoming) != 1 || d.Incoming[0].ShortID != "MA" || d.Incoming[0].WeightText() != "0.60" {
			t.Errorf("incoming = %+v", d.Incoming)
		}
		if !d.HasConnections() {
			t.Error("expected connections")
		}
	})
}

func TestBuildDetailSparse(t *testing.T) {
	cat := testCatalog(t)

	d, err := BuildDetail(cat.NewEngine(), "CM")
	if err != nil {
		t.Fatalf("BuildDetail() error = %v", err)
	}
	if len(d.Sections) != 0 {
		t.Errorf("sections = %+v, want none", d.Sections)
	}
	if d.HasConnections() || d.ConnectionCount != 0 {
		t.Errorf("isolated pattern has connections: %+v", d)
	}
	if d.Layer.Name != "Knowledge & Memory" {
		t.Errorf("layer = %+v", d.Layer)
	}
}

func TestBuildDetailUnknown(t *testing.T) {
	cat := testCatalog(t)

	if _, err := BuildDetail(cat.NewEngine(), "ZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
