// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"ptt-app-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// Parse faults surface as server errors with the parser's message,
	// matching the propagated failure-reporting style of /parse-simple.
	if errors.IsParse(err) {
		return huma.Error500InternalServerError(err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
