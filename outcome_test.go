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
	"fmt"
	"testing"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/outcome"
)

//--------------------
// TESTS
//--------------------

// TestSuccess verifies a success without payload.
func TestSuccess(t *testing.T) {
	o := outcome.Success()

	verify.True(t, o.Successful())
	verify.True(t, !o.Failed())
	verify.True(t, !o.HasPayload())
	verify.Equal(t, o.Message(), "")
	verify.NoError(t, o.Err())
	verify.Equal(t, o.String(), "success")

	payload, err := o.Payload()
	verify.NoError(t, err)
	verify.True(t, payload == nil)
}

// TestSuccessWith verifies a success carrying a payload.
func TestSuccessWith(t *testing.T) {
	o, err := outcome.SuccessWith("Value")
	verify.NoError(t, err)

	verify.True(t, o.Successful())
	verify.True(t, !o.Failed())
	verify.True(t, o.HasPayload())
	verify.Equal(t, o.Message(), "")
	verify.Equal(t, o.String(), "success(Value)")

	payload, err := o.Payload()
	verify.NoError(t, err)
	verify.Equal(t, payload, "Value")
	verify.Equal(t, o.MustPayload(), "Value")

	// A typed nil pointer is a real value.
	var ptr *int
	o, err = outcome.SuccessWith(ptr)
	verify.NoError(t, err)
	verify.True(t, o.HasPayload())
}

// TestSuccessWithNil verifies that nil is no valid payload.
func TestSuccessWithNil(t *testing.T) {
	o, err := outcome.SuccessWith(nil)
	verify.ErrorMatch(t, err, "outcome SuccessWith: payload cannot be nil \\(invalid argument\\)")
	verify.True(t, outcome.IsCode(err, outcome.ErrInvalidArgument))
	verify.True(t, o.Failed())

	err = catch(func() {
		outcome.MustSuccessWith(nil)
	})
	verify.True(t, outcome.IsCode(err, outcome.ErrInvalidArgument))
}

// TestFail verifies a failure with a single message.
func TestFail(t *testing.T) {
	o := outcome.Fail("Error message")

	verify.True(t, !o.Successful())
	verify.True(t, o.Failed())
	verify.True(t, !o.HasPayload())
	verify.Equal(t, o.Message(), "Error message")
	verify.ErrorMatch(t, o.Err(), "^Error message$")
	verify.Equal(t, o.String(), `failure("Error message")`)
}

// TestFailMultiple verifies the joining of multiple messages.
func TestFailMultiple(t *testing.T) {
	o := outcome.Fail("m1", "m2")
	verify.Equal(t, o.Message(), "m1\nm2")

	messages := []string{"first", "second", "first", "third"}
	o = outcome.Fail(messages...)
	verify.Equal(t, o.Message(), "first\nsecond\nfirst\nthird")

	o = outcome.Fail()
	verify.True(t, o.Failed())
	verify.Equal(t, o.Message(), "")
}

// TestPayloadOfFailure verifies reading the payload of a failure.
func TestPayloadOfFailure(t *testing.T) {
	o := outcome.Fail("broken")

	payload, err := o.Payload()
	verify.True(t, payload == nil)
	verify.ErrorMatch(t, err, "outcome Payload: cannot read the value of a failed outcome, message: broken \\(invalid state\\)")
	verify.True(t, outcome.IsCode(err, outcome.ErrInvalidState))

	err = catch(func() {
		o.MustPayload()
	})
	verify.True(t, outcome.IsCode(err, outcome.ErrInvalidState))
}

// TestAs verifies the typed access to the payload.
func TestAs(t *testing.T) {
	o := outcome.MustSuccessWith("Value")

	s, err := outcome.As[string](o)
	verify.NoError(t, err)
	verify.Equal(t, s, "Value")
	verify.Equal(t, outcome.MustAs[string](o), "Value")

	st, err := outcome.As[fmt.Stringer](outcome.MustSuccessWith(outcome.Unit{}))
	verify.NoError(t, err)
	verify.Equal(t, st.String(), "()")

	i, err := outcome.As[int](o)
	verify.Equal(t, i, 0)
	verify.ErrorMatch(t, err, "outcome As: payload of type string is not int \\(type mismatch\\)")
	verify.True(t, outcome.IsCode(err, outcome.ErrTypeMismatch))

	_, err = outcome.As[string](outcome.Fail("nope"))
	verify.ErrorMatch(t, err, "outcome As: cannot read the value of a failed outcome, message: nope \\(invalid state\\)")
	verify.True(t, outcome.IsCode(err, outcome.ErrInvalidState))

	err = catch(func() {
		outcome.MustAs[int](o)
	})
	verify.True(t, outcome.IsCode(err, outcome.ErrTypeMismatch))
}

// TestAsWithoutPayload verifies the typed access to a success
// without payload.
func TestAsWithoutPayload(t *testing.T) {
	o := outcome.Success()

	v, err := outcome.As[any](o)
	verify.NoError(t, err)
	verify.True(t, v == nil)

	_, err = outcome.As[string](o)
	verify.True(t, outcome.IsCode(err, outcome.ErrTypeMismatch))
}

// TestOutcomeIsErasable verifies that an outcome erases to itself.
func TestOutcomeIsErasable(t *testing.T) {
	var e outcome.Erasable = outcome.Fail("x")

	verify.Equal(t, e.Outcome().Message(), "x")
}

//--------------------
// HELPERS
//--------------------

// catch runs f and returns the error it panicked with.
func catch(f func()) (err error) {
	defer func() {
		if reason := recover(); reason != nil {
			err, _ = reason.(error)
		}
	}()
	f()
	return nil
}

// EOF
