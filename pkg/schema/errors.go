package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParameter is returned when a kind declares the same parameter twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
	// ErrConflictingKind is returned when a kind is registered twice with different schemas.
	ErrConflictingKind = errors.New("conflicting kind definition")
	// ErrInvalidName is returned for empty kind or parameter names.
	ErrInvalidName = errors.New("invalid name")
)

// SchemaError reports a broken catalog declaration. It is fatal at load time.
type SchemaError struct {
	Kind   string // Offending kind
	Param  string // Offending parameter, if any
	Source string // Catalog the declaration came from, if known
	Err    error  // One of the package sentinels
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("schema %q", e.Kind)
	if e.Param != "" {
		msg += fmt.Sprintf(", parameter %q", e.Param)
	}
	if e.Source != "" {
		msg += fmt.Sprintf(" (from %s)", e.Source)
	}
	return msg + ": " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError represents a single parameter lint failure.
type ValidationError struct {
	Key    string // Parameter name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
