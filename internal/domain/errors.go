// Package domain contains the core domain models and types.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrEmptyContext indicates the request context is empty or whitespace only.
	ErrEmptyContext = errors.New("context is empty")

	// ErrContextTooLarge indicates the context exceeds the maximum allowed size.
	ErrContextTooLarge = errors.New("context exceeds maximum size")

	// ErrAITimeout indicates the AI service did not respond in time.
	ErrAITimeout = errors.New("AI service timeout")

	// ErrAIUnavailable indicates the AI service is not available.
	ErrAIUnavailable = errors.New("AI service unavailable")

	// ErrInvalidAIResponse indicates the AI response failed schema validation.
	ErrInvalidAIResponse = errors.New("invalid AI response format")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GuidelineError wraps an error with operation context.
type GuidelineError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying error.
	Err error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *GuidelineError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *GuidelineError) Unwrap() error {
	return e.Err
}

// WrapError creates a new GuidelineError with context.
func WrapError(op string, err error, retryable bool) *GuidelineError {
	return &GuidelineError{
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var ge *GuidelineError
	if errors.As(err, &ge) {
		return ge.Retryable
	}
	return false
}
