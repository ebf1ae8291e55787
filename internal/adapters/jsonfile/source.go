package jsonfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"patternmap/internal/domain"
)

// Source loads a JSON catalog from a file on disk or inside an fs.FS
type Source struct {
	fsys fs.FS
	path string
}

// NewFileSource creates a source for a path on the local filesystem
func NewFileSource(path string) *Source {
	return &Source{path: path}
}

// NewFSSource creates a source for a file inside fsys, e.g. an embedded catalog
func NewFSSource(fsys fs.FS, name string) *Source {
	return &Source{fsys: fsys, path: name}
}

// Describe returns the catalog path
func (s *Source) Describe() string {
	if s.fsys != nil {
		return "embedded:" + s.path
	}
	return s.path
}

// Load reads and validates the catalog
func (s *Source) Load(ctx context.Context) (*domain.Dataset, error) {
	var (
		f   fs.File
		err error
	)
	if s.fsys != nil {
		f, err = s.fsys.Open(s.path)
	} else {
		f, err = os.Open(s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
