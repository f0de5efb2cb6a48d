// Tideland Go Outcome - Unit Tests
//
// Copyright (C) 2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome_test

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
	"testing"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/outcome"
)

//--------------------
// TESTS
//--------------------

// TestErrorCodeString verifies the names of the error codes.
func TestErrorCodeString(t *testing.T) {
	verify.Equal(t, outcome.ErrNone.String(), "no error")
	verify.Equal(t, outcome.ErrInvalidArgument.String(), "invalid argument")
	verify.Equal(t, outcome.ErrInvalidState.String(), "invalid state")
	verify.Equal(t, outcome.ErrTypeMismatch.String(), "type mismatch")
	verify.Equal(t, outcome.ErrUnsupported.String(), "unsupported")
	verify.Equal(t, outcome.ErrorCode(99).String(), "unknown error")
}

// TestOutcomeError verifies formatting and unwrapping.
func TestOutcomeError(t *testing.T) {
	cause := errors.New("cause")
	err := outcome.NewError("Test", cause, outcome.ErrUnsupported)

	verify.Equal(t, err.Error(), "outcome Test: cause (unsupported)")
	verify.True(t, errors.Is(err, cause))

	bare := outcome.NewError("Bare", nil, outcome.ErrInvalidState)
	verify.Equal(t, bare.Error(), "outcome Bare: invalid state")
}

// TestIsCode verifies the code check along an error chain.
func TestIsCode(t *testing.T) {
	err := outcome.NewError("Test", nil, outcome.ErrTypeMismatch)
	wrapped := fmt.Errorf("loading config: %w", err)

	verify.True(t, outcome.IsCode(err, outcome.ErrTypeMismatch))
	verify.True(t, outcome.IsCode(wrapped, outcome.ErrTypeMismatch))
	verify.True(t, !outcome.IsCode(wrapped, outcome.ErrInvalidState))
	verify.True(t, !outcome.IsCode(errors.New("plain"), outcome.ErrTypeMismatch))
	verify.True(t, !outcome.IsCode(nil, outcome.ErrNone))
}

// EOF
