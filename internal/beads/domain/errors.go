package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog indicates no usable bead rows were loaded.
	ErrEmptyCatalog = errors.New("catalog contains no beads")

	// ErrNoMatch indicates no bead passed the brand filter.
	ErrNoMatch = errors.New("no matching bead")
)

// UnknownBrandError indicates that no bead in the catalog has the brand.
type UnknownBrandError struct {
	Brand string
}

// Error implements the error interface.
func (e *UnknownBrandError) Error() string {
	return fmt.Sprintf("invalid brand choice: %q", e.Brand)
}

// UnknownColorError indicates that no bead of the brand has the name or code.
type UnknownColorError struct {
	Brand string
	ID    string
}

// Error implements the error interface.
func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("couldn't find the color by the id: %s for the brand: %s", e.ID, e.Brand)
}

// SameBrandError indicates a conversion whose source and target brand are equal.
type SameBrandError struct {
	Brand string
}

// Error implements the error interface.
func (e *SameBrandError) Error() string {
	return fmt.Sprintf("cannot convert bead between the same brand: %s", e.Brand)
}

// RowError describes a catalog row that was skipped.
type RowError struct {
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// TooManyColorsError indicates an image has more distinct colors than allowed.
type TooManyColorsError struct {
	Limit int
}

// Error implements the error interface.
func (e *TooManyColorsError) Error() string {
	return fmt.Sprintf("image has more than %d distinct colors", e.Limit)
}
