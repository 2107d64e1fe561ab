package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business error code, so errors
// derived through WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Property-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid property data",
		"",
	)

	ErrUnsupportedPropertyType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROPERTY_TYPE",
		"property type must be House, Apartment or Commercial Space",
		"",
	)

	ErrEmptyCollection = NewBaseError(
		http.StatusConflict,
		"EMPTY_COLLECTION",
		"no properties are loaded",
		"",
	)

	// Snapshot-related errors
	ErrSourceNotFound = NewBaseError(
		http.StatusNotFound,
		"SOURCE_NOT_FOUND",
		"property source could not be found",
		"",
	)

	ErrLoadFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_FAILED",
		"failed to load properties",
		"",
	)

	ErrSnapshotFailed = NewBaseError(
		http.StatusInternalServerError,
		"SNAPSHOT_FAILED",
		"failed to save property selection",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StorageError represents a failure of the underlying object storage, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying storage error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
