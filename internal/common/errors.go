// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors.
	ErrInvalidAmount     = errors.New("amount must be a valid number")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")

	// Range errors.
	ErrIndexOutOfRange = errors.New("invalid expense index")

	// Storage errors.
	ErrStoreLoad = errors.New("failed to load expense data")
	ErrStoreSave = errors.New("failed to save expense data")

	// Query errors.
	ErrNoRecords = errors.New("no expenses recorded")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
