package error

import "errors"

// Storage errors. Recovery from a corrupt document is caller-owned: the
// analytics core never repairs or rewrites storage, it only computes over
// whatever snapshot it is handed.
var (
	// ErrCorruptDataFile is returned when the persisted document cannot be parsed.
	ErrCorruptDataFile = errors.New("data file is not valid JSON")

	// ErrUnsupportedStoreDriver is returned for unknown STORE_DRIVER values.
	ErrUnsupportedStoreDriver = errors.New("unsupported store driver")
)

// StorageErrorCode defines error codes for storage errors.
type StorageErrorCode string

const (
	ErrCodeCorruptDataFile        StorageErrorCode = "STO-010001"
	ErrCodeUnsupportedStoreDriver StorageErrorCode = "STO-010002"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCorruptDataFileError creates the coded error for an unparseable
// document. It matches ErrCorruptDataFile under errors.Is and still carries
// the decoding cause.
func NewCorruptDataFileError(path string, err error) *StorageError {
	return NewStorageError(ErrCodeCorruptDataFile, "corrupt data file at "+path, errors.Join(ErrCorruptDataFile, err))
}
