// ABOUTME: Error types and handling for the feedreader library
// ABOUTME: Structured configuration errors plus classification of feed errors

package feedreader

import (
	stderrors "errors"
	"fmt"

	"feedreader-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates the client could not be configured
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeNetwork indicates the feed could not be fetched
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeAuth indicates the server rejected the credentials
	ErrorTypeAuth ErrorType = "auth"

	// ErrorTypeParsing indicates the feed type or document was invalid
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeCache indicates a cache backend failure
	ErrorTypeCache ErrorType = "cache"

	// ErrorTypeInternal covers everything else
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Classify maps an error collected on a reader to its library error type
func Classify(err error) ErrorType {
	var libErr *Error
	switch {
	case err == nil:
		return ""
	case stderrors.As(err, &libErr):
		return libErr.Type
	case errors.IsAuth(err):
		return ErrorTypeAuth
	case errors.IsTransport(err):
		return ErrorTypeNetwork
	case errors.IsTypeDetection(err), errors.IsUnsupportedType(err),
		errors.IsFormatValidation(err), errors.IsDecode(err):
		return ErrorTypeParsing
	case errors.IsCache(err):
		return ErrorTypeCache
	default:
		return ErrorTypeInternal
	}
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return Classify(err) == ErrorTypeConfiguration
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return Classify(err) == ErrorTypeNetwork
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	return Classify(err) == ErrorTypeAuth
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return Classify(err) == ErrorTypeParsing
}
