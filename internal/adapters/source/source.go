// Package source picks a dataset loader for a catalog path.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"patternmap/data"
	"patternmap/internal/adapters/hclfile"
	"patternmap/internal/adapters/jsonfile"
	"patternmap/internal/adapters/sqlite"
	"patternmap/internal/ports"
)

// ForPath returns the loader for path based on its extension.
// An empty path selects the embedded sample catalog.
func ForPath(path string) (ports.DatasetSource, error) {
	if path == "" {
		return Sample(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonfile.NewFileSource(path), nil
	case ".hcl":
		return hclfile.NewSource(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.NewSource(path), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (expected .json, .hcl or .db)", filepath.Ext(path))
	}
}

// Sample returns the embedded sample catalog
func Sample() ports.DatasetSource {
	return jsonfile.NewFSSource(data.FS, data.SampleCatalog)
}
