// Package profile loads, normalizes and checks student profiles coming from uploads and manual entry.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNothingToImport is returned when an import batch contains no records
var ErrNothingToImport = errors.New("nothing to import")

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a profile that is missing information needed for display
type ValidationError struct {
	Message string
	Fields  []string
	Cause   error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation error in %s: %s", strings.Join(e.Fields, ", "), e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
