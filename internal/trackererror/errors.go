// Package trackererror defines the rejection taxonomy returned by the expense
// tracker core. Every error here is recoverable by the user: callers report it
// and carry on.
package trackererror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for amounts outside (0, 1000].
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCategory is returned for empty, non-alphabetic or unknown categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUnparsableNumber is returned when a numeric parameter cannot be parsed.
	ErrUnparsableNumber = errors.New("unparsable number")
	// ErrInvalidFilterParameter is returned when a filter cannot be built from its parameter.
	ErrInvalidFilterParameter = errors.New("invalid filter parameter")
	// ErrRowOutOfRange is returned when a displayed row number does not exist.
	ErrRowOutOfRange = errors.New("row out of range")
)

// ValidationError represents a business rule violation on a single input value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseError represents raw text that could not be turned into a number.
// It always matches ErrUnparsableNumber with errors.Is.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrUnparsableNumber
}

// FilterError wraps the validation failure that prevented a filter from being
// activated. It always matches ErrInvalidFilterParameter with errors.Is.
type FilterError struct {
	Kind      string
	Parameter string
	Err       error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter parameter for %s='%s': %v", e.Kind, e.Parameter, e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

func (e *FilterError) Is(target error) bool {
	return target == ErrInvalidFilterParameter
}

// Message returns the short user-facing text for a rejection, falling back to
// the error text for anything outside the taxonomy.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnparsableNumber):
		return "Invalid number for amount filter"
	case errors.Is(err, ErrInvalidFilterParameter) && errors.Is(err, ErrInvalidCategory):
		return "Invalid category parameter"
	case errors.Is(err, ErrInvalidFilterParameter) && errors.Is(err, ErrInvalidAmount):
		return "Amount parameter is invalid"
	case errors.Is(err, ErrInvalidFilterParameter):
		return "Invalid filter parameter: " + err.Error()
	case errors.Is(err, ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, ErrInvalidCategory):
		return "Invalid category"
	case errors.Is(err, ErrRowOutOfRange):
		return "No such row"
	default:
		return err.Error()
	}
}
