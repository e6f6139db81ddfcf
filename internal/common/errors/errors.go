// Package errors provides standardized error handling for the chatbot.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMissingParameters  ErrorCode = "MISSING_PARAMETERS"
	ErrCodeRecordNotFound     ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeUnrecognizedQuery  ErrorCode = "UNRECOGNIZED_QUERY"
	ErrCodeMalformedInputData ErrorCode = "MALFORMED_INPUT_DATA"

	ErrCodeTemplateNotFound         ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateValidationFailed ErrorCode = "TEMPLATE_VALIDATION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
)

// Sentinel errors used by handlers. Wrap with fmt.Errorf("%w: ...") so the
// engine can classify failures with errors.Is.
var (
	// ErrMissingParameters means the query matched an intent but the
	// extractors could not pull the required parameters out of it.
	ErrMissingParameters = errors.New(string(ErrCodeMissingParameters))

	// ErrRecordNotFound means all parameters were present but no row in
	// the dataset matches them.
	ErrRecordNotFound = errors.New(string(ErrCodeRecordNotFound))
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMalformedInputDataError creates a non-retryable dataset load error.
// A malformed source row is fatal at startup.
func NewMalformedInputDataError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedInputData,
		Message:   "Source data row failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Response template not found",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateValidationFailedError creates a non-retryable template rendering error.
func NewTemplateValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateValidationFailed,
		Message:   "Template rendering left unresolved placeholders",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// CodeOf returns the ErrorCode carried by err, or UNRECOGNIZED_QUERY when
// the error is not one the taxonomy knows about.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	switch {
	case errors.Is(err, ErrMissingParameters):
		return ErrCodeMissingParameters
	case errors.Is(err, ErrRecordNotFound):
		return ErrCodeRecordNotFound
	}
	return ErrCodeUnrecognizedQuery
}

// IsRetryable reports whether err represents a transient infrastructure
// failure. Handler errors are never retryable; the user rephrases instead.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}
