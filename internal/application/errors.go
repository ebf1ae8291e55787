package application

import (
	"fmt"

	"patternmap/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = domain.ErrNotFound
	ErrDataIntegrity = domain.ErrDataIntegrity
	ErrInvalidInput  = domain.ErrInvalidInput
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes argument validation failures match ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LoadError represents a dataset that could not be read or validated
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load dataset from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
