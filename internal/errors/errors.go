package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorData     = 2 // Indicates malformed persisted data.
	ExitErrorInternal = 3 // Indicates a broken arithmetic invariant.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an invalid-input failure: a non-positive part,
// a negative or non-integer evaluation point, or a malformed output-format
// selector. It identifies which field failed validation and carries the
// offending value. Validation errors are reported immediately and never
// retried; the operation does not proceed.
type ValidationError struct {
	// Field is the name of the input that failed validation.
	Field string
	// Value is the offending value, formatted for display.
	Value string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PersistedDataError represents corrupt or truncated serialized data detected
// while reconstructing a representation. No partial reconstruction is ever
// returned alongside it.
type PersistedDataError struct {
	// Line is the 1-based line number where parsing failed (0 if unknown).
	Line int
	// Message explains what was malformed.
	Message string
}

// Error returns a formatted message describing the parse failure.
func (e PersistedDataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed persisted data at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("malformed persisted data: %s", e.Message)
}

// InternalError represents a broken arithmetic invariant: the finished
// representation produced a non-integer or negative count. This is a
// programming error, not a recoverable condition; callers should treat it
// as fatal.
type InternalError struct {
	// Op is the operation that detected the violation.
	Op string
	// Detail describes the violated invariant and the offending value.
	Detail string
}

// Error returns a formatted message describing the invariant violation.
func (e InternalError) Error() string {
	return fmt.Sprintf("internal invariant violated in %s: %s", e.Op, e.Detail)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the application exit code for its class.
//
// Parameters:
//   - err: The error to classify (may be nil).
//
// Returns:
//   - int: The exit code associated with the error class.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfg ConfigError
	var val ValidationError
	var data PersistedDataError
	var internal InternalError
	switch {
	case errors.As(err, &cfg), errors.As(err, &val):
		return ExitErrorConfig
	case errors.As(err, &data):
		return ExitErrorData
	case errors.As(err, &internal):
		return ExitErrorInternal
	default:
		return ExitErrorGeneric
	}
}
