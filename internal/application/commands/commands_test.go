package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patternmap/internal/adapters/source"
	"patternmap/internal/application"
	"patternmap/internal/domain"
	"patternmap/internal/ports"
)

func TestLoadCatalogCommand(t *testing.T) {
	cat, err := NewLoadCatalogCommand(source.Sample()).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(cat.Data.Patterns) != 20 || len(cat.Data.Links) != 62 {
		t.Errorf("sample has %d patterns, %d links", len(cat.Data.Patterns), len(cat.Data.Links))
	}
	if cat.Index.Len() != len(cat.Data.Patterns) {
		t.Errorf("index covers %d patterns", cat.Index.Len())
	}
}

func TestListPatternsCommand(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		layers  []string
		want    []string
		wantErr error
	}{
		{name: "all", want: []string{"RT", "PL", "GS", "MA"}},
		{name: "one layer", layers: []string{"safety"}, want: []string{"GS"}},
		{name: "unknown layer", layers: []string{"nope"}, wantErr: application.ErrInvalidInput},
		{name: "layer without patterns", layers: []string{"operations"}, wantErr: application.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := NewListPatternsCommand(cat, tt.layers).Execute(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			var ids []string
			for _, p := range patterns {
				ids = append(ids, p.ShortID)
			}
			if diff := cmp.Diff(tt.want, ids); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListLayersCommand(t *testing.T) {
	entries, err := NewListLayersCommand(testCatalog(t)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := map[string]int{}
	for _, e := range entries {
		got[e.Key] = e.Count
	}
	// operations has no patterns and stays out of the legend
	if diff := cmp.Diff(map[string]int{"orchestration": 3, "safety": 1}, got); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}
}

func TestShowPatternCommand(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	t.Run("resolves case and long id", func(t *testing.T) {
		for _, ref := range []string{"RT", "rt", "routing"} {
			d, err := NewShowPatternCommand(cat, ref).Execute(ctx)
			if err != nil {
				t.Fatalf("Execute(%q) error = %v", ref, err)
			}
			if d.ShortID != "RT" || d.ConnectionCount != 3 {
				t.Errorf("Execute(%q) = %s with %d connections", ref, d.ShortID, d.ConnectionCount)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewShowPatternCommand(cat, "ZZ").Execute(ctx)
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewShowPatternCommand(cat, "").Execute(ctx)
		if !errors.Is(err, application.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestViewCommand(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	t.Run("selection", func(t *testing.T) {
		res, err := NewViewCommand(cat, "rt", nil, "").Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if res.State.SelectedID != "RT" {
			t.Errorf("selected = %q", res.State.SelectedID)
		}
		for i, p := range cat.Data.Patterns {
			if res.Nodes[i].Dimmed {
				t.Errorf("%s dimmed, every pattern neighbors RT", p.ShortID)
			}
		}
		for i, e := range res.Edges {
			if !e.Highlighted {
				t.Errorf("link %d should touch the selection", i)
			}
		}
	})

	t.Run("filters and query", func(t *testing.T) {
		res, err := NewViewCommand(cat, "", []string{"orchestration"}, "PLAN").Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		nodes, edges := res.Engine.VisibleCount()
		if nodes != 1 || edges != 0 {
			t.Errorf("visible = %d patterns, %d links", nodes, edges)
		}
		want := domain.ViewState{ActiveLayers: []string{"orchestration"}, SearchQuery: "plan"}
		if diff := cmp.Diff(want, res.State); diff != "" {
			t.Errorf("state mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := NewViewCommand(cat, "", []string{"nope"}, "").Execute(ctx); !errors.Is(err, application.ErrInvalidInput) {
			t.Errorf("layer error = %v", err)
		}
		if _, err := NewViewCommand(cat, "ZZ", nil, "").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
			t.Errorf("select error = %v", err)
		}
	})
}

type fakeRenderer struct {
	selected string
	opts     ports.PageOptions
}

func (r *fakeRenderer) Render(w io.Writer, e *domain.Engine, opts ports.PageOptions) error {
	r.selected, _ = e.Selected()
	r.opts = opts
	_, err := io.WriteString(w, "<html>"+r.selected+"</html>")
	return err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(target string) error {
	o.opened = append(o.opened, target)
	return o.err
}

func TestExportCommand(t *testing.T) {
	cat := testCatalog(t)
	ctx := context.Background()

	t.Run("writes and opens", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "nested", "graph.html")
		renderer, opener := &fakeRenderer{}, &fakeOpener{}

		cmd := NewExportCommand(NewViewCommand(cat, "PL", nil, ""), renderer, opener, out, ports.PageOptions{Title: "Map"}, true)
		path, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "<html>PL</html>" {
			t.Errorf("page = %q", data)
		}
		if renderer.opts.Title != "Map" {
			t.Errorf("opts = %+v", renderer.opts)
		}
		if diff := cmp.Diff([]string{path}, opener.opened); diff != "" {
			t.Errorf("opened mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("open failure keeps the page", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "graph.html")
		opener := &fakeOpener{err: errors.New("no browser")}

		path, err := NewExportCommand(NewViewCommand(cat, "", nil, ""), &fakeRenderer{}, opener, out, ports.PageOptions{}, true).Execute(ctx)
		if err == nil || !strings.Contains(err.Error(), "opening browser") {
			t.Errorf("error = %v", err)
		}
		if _, statErr := os.Stat(path); statErr != nil {
			t.Errorf("page missing: %v", statErr)
		}
	})

	t.Run("invalid view writes nothing", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "graph.html")
		_, err := NewExportCommand(NewViewCommand(cat, "ZZ", nil, ""), &fakeRenderer{}, nil, out, ports.PageOptions{}, false).Execute(ctx)
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
			t.Error("no page should be written")
		}
	})

	t.Run("output required", func(t *testing.T) {
		_, err := NewExportCommand(NewViewCommand(cat, "", nil, ""), &fakeRenderer{}, nil, "", ports.PageOptions{}, false).Execute(ctx)
		if !errors.Is(err, application.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

// memoryStore keeps the imported dataset in memory
type memoryStore struct {
	data *domain.Dataset
	info *ports.CatalogInfo
}

func (s *memoryStore) Open(string) error { return nil }
func (s *memoryStore) Close() error      { return nil }
func (s *memoryStore) BeginTx() (ports.CatalogTx, error) {
	return nil, errors.New("not supported")
}

func (s *memoryStore) Import(_ context.Context, data *domain.Dataset, source string) (*ports.CatalogInfo, error) {
	s.data = data
	s.info = &ports.CatalogInfo{Source: source, Patterns: len(data.Patterns), Links: len(data.Links), Layers: len(data.Layers)}
	return s.info, nil
}

func (s *memoryStore) Load(context.Context) (*domain.Dataset, error) {
	if s.data == nil {
		return nil, errors.New("empty")
	}
	return s.data, nil
}

func (s *memoryStore) Info(context.Context) (*ports.CatalogInfo, error) {
	if s.info == nil {
		return &ports.CatalogInfo{}, nil
	}
	return s.info, nil
}

type failingSource struct{}

func (failingSource) Describe() string { return "broken.json" }
func (failingSource) Load(context.Context) (*domain.Dataset, error) {
	return nil, domain.ErrDataIntegrity
}

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	info, err := NewCatalogInfoCommand(store).Execute(ctx)
	if err != nil || info.Patterns != 0 {
		t.Fatalf("empty info = %+v, %v", info, err)
	}

	info, err = NewImportCatalogCommand(store, source.Sample()).Execute(ctx)
	if err != nil {
		t.Fatalf("import error = %v", err)
	}
	if info.Patterns != 20 || info.Links != 62 {
		t.Errorf("info = %+v", info)
	}

	// A failed import leaves the stored catalog alone
	_, err = NewImportCatalogCommand(store, failingSource{}).Execute(ctx)
	if !errors.Is(err, application.ErrDataIntegrity) {
		t.Errorf("error = %v, want ErrDataIntegrity", err)
	}
	if got, _ := NewCatalogInfoCommand(store).Execute(ctx); got.Patterns != 20 {
		t.Errorf("info after failed import = %+v", got)
	}
}
