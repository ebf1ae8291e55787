package hclfile

import (
	"context"
	"fmt"
	"os"

	"patternmap/internal/domain"
)

// Source loads an HCL catalog from disk
type Source struct {
	path string
}

// NewSource creates a source for path
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Describe returns the catalog path
func (s *Source) Describe() string { return s.path }

// Load reads and validates the catalog
func (s *Source) Load(ctx context.Context) (*domain.Dataset, error) {
	src, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Decode(src, s.path)
}
