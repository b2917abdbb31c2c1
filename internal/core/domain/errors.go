package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation Errors.

	// ErrFormat indicates a malformed date, time or number.
	ErrFormat = errors.New("malformed value")

	// ErrRange indicates a numeric value outside its allowed bounds.
	ErrRange = errors.New("value out of range")

	// ErrEmptyInput indicates a required field was left blank.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingDecimal indicates a coordinate entered without a decimal point.
	// Whole numbers are rejected on purpose to force explicit precision.
	ErrMissingDecimal = errors.New("missing decimal point")

	// ErrSuggestion indicates a timezone close to, but not exactly, a canonical name.
	ErrSuggestion = errors.New("timezone near miss")

	// ErrNoMatch indicates a timezone with no plausible canonical match.
	ErrNoMatch = errors.New("timezone not recognised")

	// Session Errors.

	// ErrCancelled indicates the user aborted the intake session.
	ErrCancelled = errors.New("session cancelled")

	// ErrIncomplete indicates a profile was requested before every field was accepted.
	ErrIncomplete = errors.New("profile incomplete")
)

// ValidationError describes why a single field was rejected.
// Error returns the message shown to the user; Unwrap exposes the
// sentinel kind for errors.Is checks.
type ValidationError struct {
	// Field is the field that failed.
	Field Field

	// Kind is one of the validation sentinels above.
	Kind error

	// Message is the user-facing explanation.
	Message string

	// Suggestion holds the closest canonical value when Kind is ErrSuggestion.
	Suggestion string
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field Field, kind error, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: message}
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
