// Tideland Go Outcome
//
// Copyright (C) 2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
)

//--------------------
// ERROR TYPES
//--------------------

// ErrorCode defines the type of contract violation that occurred.
type ErrorCode int

const (
	// ErrNone signals no error.
	ErrNone ErrorCode = iota
	// ErrInvalidArgument signals a missing or illegal argument,
	// e.g. a nil payload for a success.
	ErrInvalidArgument
	// ErrInvalidState signals reading the value of a failed outcome.
	ErrInvalidState
	// ErrTypeMismatch signals a payload not matching the requested type.
	ErrTypeMismatch
	// ErrUnsupported signals an operation outside of the supported
	// range, like combining too many outcomes.
	ErrUnsupported
)

// String implements the Stringer interface.
func (ec ErrorCode) String() string {
	switch ec {
	case ErrNone:
		return "no error"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrInvalidState:
		return "invalid state"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown error"
	}
}

// OutcomeError reports the misuse of an outcome. It is never used
// for the expected failures, those are carried by failed outcomes.
type OutcomeError struct {
	Op   string
	Err  error
	Code ErrorCode
}

// Error implements the error interface.
func (e *OutcomeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("outcome %s: %v (%v)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("outcome %s: %v", e.Op, e.Code)
}

// Unwrap implements error unwrapping.
func (e *OutcomeError) Unwrap() error {
	return e.Err
}

// NewError creates a new outcome error.
func NewError(op string, err error, code ErrorCode) *OutcomeError {
	return &OutcomeError{
		Op:   op,
		Err:  err,
		Code: code,
	}
}

// IsCode checks if the error or one of the errors it wraps
// is an OutcomeError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var oerr *OutcomeError
	if !errors.As(err, &oerr) {
		return false
	}
	return oerr.Code == code
}

// failedStateError creates the error returned when reading the
// value of a failed outcome.
func failedStateError(op, message string) *OutcomeError {
	return NewError(op, fmt.Errorf("cannot read the value of a failed outcome, message: %s", message), ErrInvalidState)
}

// typeMismatchError creates the error returned when a payload
// doesn't match the wanted type.
func typeMismatchError(op string, payload any, want string) *OutcomeError {
	return NewError(op, fmt.Errorf("payload of type %T is not %s", payload, want), ErrTypeMismatch)
}

// EOF
