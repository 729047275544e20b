package ledger

import (
	"errors"
	"fmt"
)

// Common input loading errors
var (
	// ErrUnsupportedFormat is returned when the file extension is neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrEmptyInput is returned when the input file has no content.
	ErrEmptyInput = errors.New("input file is empty")

	// ErrMissingField is returned when a record lacks a field the engine keys on.
	ErrMissingField = errors.New("missing required field")

	// ErrDecode is returned when the file content cannot be decoded.
	ErrDecode = errors.New("cannot decode input")
)

// LoadError wraps errors with additional context about the failing input file.
type LoadError struct {
	// Op is the operation that failed (e.g., "Load", "validate").
	Op string

	// Path is the input file path (if available).
	Path string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch {
	case e.Details != "" && e.Path != "":
		return fmt.Sprintf("ledger: %s %s failed: %s: %v", e.Op, e.Path, e.Details, e.Err)
	case e.Details != "":
		return fmt.Sprintf("ledger: %s failed: %s: %v", e.Op, e.Details, e.Err)
	case e.Path != "":
		return fmt.Sprintf("ledger: %s %s failed: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("ledger: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *LoadError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewLoadError creates a new LoadError for path.
func NewLoadError(op, path string, err error, details string) *LoadError {
	return &LoadError{
		Op:      op,
		Path:    path,
		Err:     err,
		Details: details,
	}
}

// WrapLoadError wraps an error as a LoadError if it isn't already one.
func WrapLoadError(op, path string, err error, details string) error {
	if err == nil {
		return nil
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return err // Already wrapped
	}

	return NewLoadError(op, path, err, details)
}
