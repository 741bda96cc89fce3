package submissions

import (
	"fmt"
	"strings"
)

// MissingFieldError reports required candidate fields that were absent.
// Surfaced verbatim to the caller.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidGeometryError reports which geometry field failed validation and
// the specific rule it broke.
type InvalidGeometryError struct {
	Field  string
	Reason error
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *InvalidGeometryError) Unwrap() error {
	return e.Reason
}

// ValidationError is the store-side geometry re-check failure. Unreachable
// when the ingestion service validated first; fatal to the request, never
// retried.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store rejected candidate: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
