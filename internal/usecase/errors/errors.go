package errors

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Meeting errors
var (
	ErrMeetingInvalid = errors.New("meeting failed validation")
)

// Archive errors
var (
	ErrArchiveDisabled = errors.New("export archive is disabled")
)

// ValidationError carries the messages of a failed record validation
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrMeetingInvalid.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMeetingInvalid
}
