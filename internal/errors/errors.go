// Package errors provides unified error handling for rulebook.
//
// Business logic wraps failures as AppErrors with a standardized code;
// the CLI layer formats them for terminal display and maps them to a
// non-zero exit code. There is no retry logic anywhere: every error
// surfaces to the caller.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes.
type ErrorCode string

const (
	// Load errors: file missing, unreadable, or failing schema validation.
	ErrCodeLoad         ErrorCode = "LOAD_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"

	// Render errors: a template missing what a renderer requires.
	ErrCodeRender ErrorCode = "RENDER_ERROR"

	// Write errors: destination not writable.
	ErrCodeWrite ErrorCode = "WRITE_ERROR"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error.
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryStorage    ErrorCategory = "storage"
	CategoryRender     ErrorCategory = "render"
	CategorySystem     ErrorCategory = "system"
)

// AppError represents a standardized application error.
type AppError struct {
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   string        `json:"details,omitempty"`
	Severity  ErrorSeverity `json:"severity"`
	Category  ErrorCategory `json:"category"`
	Cause     error         `json:"-"`
	Timestamp time.Time     `json:"timestamp"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error.
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  severity,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with application error context.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := NewAppError(code, message)
	appErr.Cause = err
	return appErr
}

func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeValidation, ErrCodeMissingField:
		return CategoryValidation, SeverityWarning
	case ErrCodeLoad, ErrCodeWrite:
		return CategoryStorage, SeverityError
	case ErrCodeNotFound:
		return CategoryStorage, SeverityInfo
	case ErrCodeRender:
		return CategoryRender, SeverityError
	default:
		return CategorySystem, SeverityError
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error, or converts it to one.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, err.Error())
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Common error constructors for frequently used errors.

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

func MissingFieldError(field string) *AppError {
	return NewAppError(ErrCodeMissingField, fmt.Sprintf("required field %q is missing", field))
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func RenderError(target string, err error) *AppError {
	return Wrap(err, ErrCodeRender, fmt.Sprintf("render for %s failed", target))
}

func WriteError(path string, err error) *AppError {
	return Wrap(err, ErrCodeWrite, fmt.Sprintf("write to %s failed", path))
}
