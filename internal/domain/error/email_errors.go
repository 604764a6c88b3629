package error

// EmailErrorCode defines error codes for email delivery errors.
type EmailErrorCode string

const (
	// ErrCodePermanentEmailFailure marks failures that retrying cannot fix.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"

	// ErrCodeTemporaryEmailFailure marks failures worth retrying.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
