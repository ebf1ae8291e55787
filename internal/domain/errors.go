package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog and the engine
var (
	ErrNotFound      = errors.New("not found")
	ErrDataIntegrity = errors.New("data integrity")
	ErrInvalidInput  = errors.New("invalid input")
)

// NotFoundError represents a lookup of an unknown pattern id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pattern %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IntegrityError represents a dataset that cannot be loaded as a consistent graph
type IntegrityError struct {
	Subject string // e.g., "link 12", "pattern RT"
	Reason  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// InvalidInputError represents a rejected engine argument
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
