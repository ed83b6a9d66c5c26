// Package errors provides sentinel errors and error types for the tactics trainer.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedFEN indicates a FEN placement field that violates the grammar.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrInvalidSquare indicates a square name outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrUnknownExercise indicates an exercise ID that is not in the catalog.
	ErrUnknownExercise = errors.New("unknown exercise")

	// ErrInvalidCatalog indicates an exercise catalog that failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrSessionNotFound indicates no open puzzle session for an exercise.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError describes where a FEN placement field went wrong. It wraps
// ErrMalformedFEN so callers can test with errors.Is.
type FENError struct {
	FEN    string // The offending placement field
	Group  int    // 1-based rank group (1 = rank 8), 0 if not applicable
	Char   rune   // Offending character, 0 if not applicable
	Reason string // Human-readable reason
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string
	if e.Group > 0 {
		parts = append(parts, fmt.Sprintf("rank group %d", e.Group))
	}
	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("character %q", e.Char))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	msg := ErrMalformedFEN.Error()
	if e.FEN != "" {
		msg += fmt.Sprintf(" %q", e.FEN)
	}
	if len(parts) > 0 {
		msg += ": " + strings.Join(parts, ", ")
	}
	return msg
}

// Unwrap returns ErrMalformedFEN.
func (e *FENError) Unwrap() error {
	return ErrMalformedFEN
}

// ExerciseError wraps errors with exercise context.
type ExerciseError struct {
	Err        error  // The underlying error
	ExerciseID string // Exercise identifier, if known
	Index      int    // 1-based position in the catalog (0 if not applicable)
	Field      string // The field that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *ExerciseError) Error() string {
	var parts []string

	if e.ExerciseID != "" {
		parts = append(parts, fmt.Sprintf("exercise %q", e.ExerciseID))
	} else if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("exercise #%d", e.Index))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ExerciseError wrapper.
func (e *ExerciseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
