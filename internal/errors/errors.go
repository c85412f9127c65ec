package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMalformedInput = errors.New("malformed MIDI data")
	ErrInvalidUsage   = errors.New("invalid usage")
)

// ParseError reports a structural failure while reading a MIDI file.
// The whole file is rejected; there is no partial-result recovery.
type ParseError struct {
	Path  string // input path, empty when reading from a buffer
	Cause error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s: %s", e.Path, e.Cause)
	}
	return fmt.Sprintf("parse MIDI data: %s", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match a ParseError against ErrMalformedInput
// without knowing the concrete type.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewParseError creates a ParseError
func NewParseError(path string, cause error) *ParseError {
	return &ParseError{Path: path, Cause: cause}
}

// UsageError reports a conflicting or missing command-line argument.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

func (e *UsageError) Is(target error) bool {
	return target == ErrInvalidUsage
}

// NewUsageError creates a UsageError
func NewUsageError(reason string) *UsageError {
	return &UsageError{Reason: reason}
}
