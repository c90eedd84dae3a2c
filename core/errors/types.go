// ABOUTME: Custom error types for feed fetching, type detection and parsing
// ABOUTME: Errors are accumulated in order by the reader and exposed as human-readable messages

package errors

import (
	"errors"
	"fmt"
)

// TransportError represents an unexpected HTTP status, a network failure or a timeout
type TransportError struct {
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s could not be fetched: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("%s returns HTTP status code %d.", e.URL, e.StatusCode)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// AuthError represents a 401 response
type AuthError struct {
	URL string

	// CredentialsSupplied is true when basic auth credentials were sent
	CredentialsSupplied bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.CredentialsSupplied {
		return "Wrong credentials for 'basicAuth' option."
	}
	return fmt.Sprintf("%s needs authentication, but no 'basicAuth' option given.", e.URL)
}

// TypeDetectionError is returned when the feed type is "auto" and the
// Content-Type header does not name rss, atom or json
type TypeDetectionError struct {
	ContentType string

	// HeaderMissing is true when the response carried no headers at all
	HeaderMissing bool

	// Suggested is the format the body looks like, if any
	Suggested string
}

// Error implements the error interface
func (e *TypeDetectionError) Error() string {
	if e.HeaderMissing {
		return "Feed type is set to autodetect, but no request header found."
	}
	msg := "Could not determine feed type. Try to force type by setting type in feedOptions."
	if e.Suggested != "" {
		msg += fmt.Sprintf(" The content looks like %s.", e.Suggested)
	}
	return msg
}

// UnsupportedTypeError is returned when the resolved type has no parser
type UnsupportedTypeError struct {
	Type string
}

// Error implements the error interface
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("The type %q does not match one of 'rss', 'atom' or 'json'.", e.Type)
}

// FormatValidationError represents a document whose structure does not match its format
type FormatValidationError struct {
	Format  string
	Message string
}

// Error implements the error interface
func (e *FormatValidationError) Error() string {
	return e.Message
}

// DecodeError represents a body that could not be decoded as XML or JSON
type DecodeError struct {
	Format string
	Cause  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not decode %s content: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("could not decode %s content.", e.Format)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// CacheError represents an inconsistency between the server response and the cache
type CacheError struct {
	Key     string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cache key %s): %v", e.Message, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s (cache key %s)", e.Message, e.Key)
}

// Unwrap returns the underlying cause
func (e *CacheError) Unwrap() error {
	return e.Cause
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsTypeDetection checks if an error is a TypeDetectionError
func IsTypeDetection(err error) bool {
	var target *TypeDetectionError
	return errors.As(err, &target)
}

// IsUnsupportedType checks if an error is an UnsupportedTypeError
func IsUnsupportedType(err error) bool {
	var target *UnsupportedTypeError
	return errors.As(err, &target)
}

// IsFormatValidation checks if an error is a FormatValidationError
func IsFormatValidation(err error) bool {
	var target *FormatValidationError
	return errors.As(err, &target)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsCache checks if an error is a CacheError
func IsCache(err error) bool {
	var target *CacheError
	return errors.As(err, &target)
}

// Kind returns a short machine-readable name for the error type
func Kind(err error) string {
	switch {
	case IsAuth(err):
		return "auth"
	case IsTransport(err):
		return "transport"
	case IsTypeDetection(err):
		return "type_detection"
	case IsUnsupportedType(err):
		return "unsupported_type"
	case IsFormatValidation(err):
		return "format_validation"
	case IsDecode(err):
		return "decode"
	case IsCache(err):
		return "cache"
	default:
		return "unknown"
	}
}

// Messages converts an error list into human-readable strings
func Messages(errs []error) []string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		msgs = append(msgs, "Error: "+err.Error())
	}
	return msgs
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
