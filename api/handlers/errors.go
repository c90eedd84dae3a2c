// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts reader errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/core/errors"
)

// toHumaError converts reader errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsAuth(err) {
		return huma.Error401Unauthorized(err.Error())
	}

	if errors.IsTypeDetection(err) || errors.IsUnsupportedType(err) ||
		errors.IsFormatValidation(err) || errors.IsDecode(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	var transportErr *errors.TransportError
	if stderrors.As(err, &transportErr) {
		switch {
		case transportErr.Cause != nil && isTimeout(transportErr.Cause):
			return huma.Error504GatewayTimeout(err.Error())
		case transportErr.StatusCode == http.StatusNotFound:
			return huma.Error404NotFound(err.Error())
		default:
			return huma.Error502BadGateway(err.Error())
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// isTimeout reports whether err is a deadline or net timeout
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	if stderrors.As(err, &t) && t.Timeout() {
		return true
	}
	return stderrors.Is(err, context.DeadlineExceeded)
}
