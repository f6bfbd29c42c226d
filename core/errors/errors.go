// Package errors provides standardized error types and helpers for the Hebrew
// text-processing engine and its collaborators.
//
// The text-processing errors (UnmappedCodepoint, MalformedVerse, NoTableEntry)
// are data-quality signals: the operation that reports them has already
// recovered and returned a usable result.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")

	// ErrUnmappedCodepoint indicates a Hebrew-block scalar with no classification
	ErrUnmappedCodepoint = errors.New("unmapped codepoint")
	// ErrMalformedVerse indicates a verse whose punctuation could not be attached
	ErrMalformedVerse = errors.New("malformed verse")
	// ErrEmptyQuery indicates a search query with no terms
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoTableEntry indicates a scalar that no transliteration table covers
	ErrNoTableEntry = errors.New("no table entry")
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book", "verse")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON", "TOML", "query")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// UnmappedCodepointError reports a scalar inside the Hebrew block that the
// classifier does not know. The scalar was passed through unchanged.
type UnmappedCodepointError struct {
	Scalar   rune
	Position int // rune index in the input
}

func (e *UnmappedCodepointError) Error() string {
	return fmt.Sprintf("unmapped codepoint U+%04X at %d", e.Scalar, e.Position)
}

func (e *UnmappedCodepointError) Unwrap() error {
	return ErrUnmappedCodepoint
}

// MalformedVerseError reports punctuation that had no word to attach to.
// The offending mark was dropped.
type MalformedVerseError struct {
	Text     string // Verse text being tokenized
	Mark     rune   // Punctuation mark that was dropped
	Position int    // Candidate index within the verse
	Reason   string
}

func (e *MalformedVerseError) Error() string {
	return fmt.Sprintf("malformed verse: %s (U+%04X at candidate %d)", e.Reason, e.Mark, e.Position)
}

func (e *MalformedVerseError) Unwrap() error {
	return ErrMalformedVerse
}

// NoTableEntryError reports a scalar that survived every transliteration
// table lookup and was copied verbatim into the output.
type NoTableEntryError struct {
	Scalar rune
	Clump  string // Raw scalars of the clump that contained it
}

func (e *NoTableEntryError) Error() string {
	return fmt.Sprintf("no transliteration for U+%04X in clump %q", e.Scalar, e.Clump)
}

func (e *NoTableEntryError) Unwrap() error {
	return ErrNoTableEntry
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join wraps errors.Join for convenience
func Join(errs ...error) error {
	return errors.Join(errs...)
}
