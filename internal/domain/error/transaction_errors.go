package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransactionID is returned when a record with the same ID already exists.
	ErrDuplicateTransactionID = errors.New("transaction id already exists")

	// ErrInvalidDateRange is returned when a filter's end date precedes its start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrUnsupportedExportFormat is returned for export formats other than json and csv.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound     TransactionErrorCode = "TXN-010001"
	ErrCodeDuplicateTransactionID  TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidDateRange        TransactionErrorCode = "TXN-010003"
	ErrCodeUnsupportedExportFormat TransactionErrorCode = "TXN-010004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
