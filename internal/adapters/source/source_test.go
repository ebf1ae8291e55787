package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"patternmap/internal/adapters/hclfile"
	"patternmap/internal/adapters/jsonfile"
	"patternmap/internal/adapters/sqlite"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		check   func(any) bool
		wantErr bool
	}{
		{path: "", check: func(s any) bool { _, ok := s.(*jsonfile.Source); return ok }},
		{path: "catalog.json", check: func(s any) bool { _, ok := s.(*jsonfile.Source); return ok }},
		{path: "catalog.HCL", check: func(s any) bool { _, ok := s.(*hclfile.Source); return ok }},
		{path: "catalog.db", check: func(s any) bool { _, ok := s.(*sqlite.Source); return ok }},
		{path: "catalog.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			src, err := ForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !tt.check(src) {
				t.Errorf("ForPath(%q) = %T", tt.path, src)
			}
		})
	}
}

func TestSampleDescribe(t *testing.T) {
	if got := Sample().Describe(); got != "embedded:patterns.json" {
		t.Errorf("Describe() = %q", got)
	}
}

func TestForPathLoadsHCL(t *testing.T) {
	src := `
layer "core" {
  name = "Core"
}

pattern "A" {
  label     = "Alpha"
  layer     = "core"
  use_cases = ["first"]

  metrics {
    pagerank     = 0.2
    weighted_out = 1
    weighted_in  = 0
  }
}

pattern "B" {
  label = "Beta"
  layer = "core"

  metrics {
    pagerank     = 0.1
    weighted_out = 0
    weighted_in  = 1
  }
}

link {
  source = "A"
  target = "B"
  weight = 1
}
`
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ForPath(path)
	if err != nil {
		t.Fatalf("ForPath() error = %v", err)
	}
	d, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Patterns) != 2 || len(d.Links) != 1 {
		t.Errorf("got %d patterns, %d links, want 2, 1", len(d.Patterns), len(d.Links))
	}
	if got := d.LayerName("core"); got != "Core" {
		t.Errorf("LayerName(core) = %q, want Core", got)
	}
}
