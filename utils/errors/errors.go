// Package errors provides structured error handling for the skim backend.
// It defines error types with codes, messages, causes and contextual
// information so failures can be categorized at the REST boundary without
// leaking internal state.
package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeConflict   ErrorCode = "CONFLICT_ERROR"
	ErrCodeFetch      ErrorCode = "FETCH_ERROR"
	ErrCodeExtraction ErrorCode = "EXTRACTION_ERROR"
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeTimeout    ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AppError is a structured application error with code, message, cause and
// context. It implements the error interface and supports unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps the error code onto the HTTP status surfaced to
// clients. Fetch and extraction failures are reported as 400 because the
// caller supplied the URL that could not be processed.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeFetch, ErrCodeExtraction:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// NotFoundError creates an AppError for missing records.
func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Context: context}
}

// ConflictError creates an AppError for unique-key violations on create.
func ConflictError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message, Cause: cause, Context: context}
}

// FetchError creates an AppError for network failures reaching a feed or page.
func FetchError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeFetch, Message: message, Cause: cause, Context: context}
}

// ExtractionError creates an AppError for pages that were fetched but whose
// main content could not be isolated.
func ExtractionError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExtraction, Message: message, Cause: cause, Context: context}
}

// DatabaseError creates an AppError for database-related failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// RateLimitError creates an AppError for rate limiting violations.
func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeRateLimit, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timeout-related failures.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		for key, value := range appErr.Context {
			args = append(args, key, value)
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
