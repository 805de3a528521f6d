package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a generation rule violation
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	// ErrCodeInvalidField marks a user-supplied field that fails its
	// length or character-class constraint.
	ErrCodeInvalidField = "INVALID_FIELD"

	// ErrCodeInvalidPayload marks a payload that reached the checksum
	// engine with characters outside 0-9/A-Z. This is an internal
	// composition bug, never bad user input.
	ErrCodeInvalidPayload = "INVALID_PAYLOAD"

	// ErrCodeInvalidCount marks a batch size outside the allowed range.
	ErrCodeInvalidCount = "INVALID_COUNT"
)

func NewInvalidFieldError(field, constraint string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("%s must be %s", field, constraint),
	}
}

func NewInvalidPayloadError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPayload,
		Message: fmt.Sprintf("invalid payload: %s", reason),
	}
}

func NewInvalidCountError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCount,
		Message: fmt.Sprintf("invalid count: %s", reason),
	}
}

func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
