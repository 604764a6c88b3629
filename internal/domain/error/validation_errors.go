// Package error defines domain-specific errors for the Quantum Finance backend.
package error

import "errors"

// Normalization sentinel errors.
var (
	// ErrInvalidAmount is returned when an amount does not parse as a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInvalidCategory is returned when a category maps to neither Income nor Expense.
	ErrInvalidCategory = errors.New("category must be Income or Expense")

	// ErrInvalidDate is returned when a date matches none of the accepted formats.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrMissingDescription is returned when the description is empty after trimming.
	ErrMissingDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when an interactively entered description
	// exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// ValidationErrorCode defines error codes for field validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	ErrCodeInvalidAmount      ValidationErrorCode = "VAL-010001"
	ErrCodeInvalidCategory    ValidationErrorCode = "VAL-010002"
	ErrCodeInvalidDate        ValidationErrorCode = "VAL-010003"
	ErrCodeMissingDescription ValidationErrorCode = "VAL-010004"
	ErrCodeDescriptionTooLong ValidationErrorCode = "VAL-010005"
)

// ValidationError reports a malformed field on an input record. It names the
// offending field so the caller can reject that record and continue with the
// rest of the batch.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Field + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(code ValidationErrorCode, field, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
