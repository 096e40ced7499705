// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (validation,
// persistence, internal invariants) and for carrying the offending value.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that wrap a cause implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors
