// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the cirq library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidCapacity   = fmt.Errorf("capacity must be at least 1")
	ErrInvalidItemSize   = fmt.Errorf("item size must be at least 1")
	ErrItemSizeMismatch  = fmt.Errorf("item length differs from slot size")
	ErrQueueClosed       = fmt.Errorf("queue is closed")
	ErrAllocationFailure = fmt.Errorf("storage allocation failed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeInvalidItemSize
	ErrCodeSizeMismatch
	ErrCodeClosed
	ErrCodeAllocation
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a structured error with optional context.
func NewError(code ErrorCode, message string, context map[string]any) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Unwrap maps structured errors back to their sentinel values so callers
// can match with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeInvalidItemSize:
		return ErrInvalidItemSize
	case ErrCodeSizeMismatch:
		return ErrItemSizeMismatch
	case ErrCodeClosed:
		return ErrQueueClosed
	case ErrCodeAllocation:
		return ErrAllocationFailure
	default:
		return nil
	}
}
