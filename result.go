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
	"strings"
)

//--------------------
// TYPED OUTCOME
//--------------------

// Of is the statically typed outcome. A success always carries a
// value of type T, a failure carries a message.
type Of[T any] struct {
	successful bool
	value      T
	message    string
}

// SuccessOf returns a successful typed outcome with the given value.
func SuccessOf[T any](value T) Of[T] {
	return Of[T]{
		successful: true,
		value:      value,
	}
}

// FailOf returns a failed typed outcome. Multiple messages are
// joined like in Fail().
func FailOf[T any](messages ...string) Of[T] {
	return Of[T]{
		message: strings.Join(messages, separator),
	}
}

// FromPair creates a typed outcome out of a value and an error
// as returned by most Go functions. A non-nil error results in
// a failure with the error text as message.
func FromPair[T any](value T, err error) Of[T] {
	if err != nil {
		return FailOf[T](err.Error())
	}
	return SuccessOf(value)
}

// Successful returns true if the outcome is a success.
func (o Of[T]) Successful() bool {
	return o.successful
}

// Failed returns true if the outcome is a failure.
func (o Of[T]) Failed() bool {
	return !o.successful
}

// Message returns the message of a failed outcome.
func (o Of[T]) Message() string {
	return o.message
}

// Value returns the value of a successful outcome or an
// ErrInvalidState if it failed.
func (o Of[T]) Value() (T, error) {
	if !o.successful {
		var zero T
		return zero, failedStateError("Value", o.message)
	}
	return o.value, nil
}

// MustValue is like Value but panics with the OutcomeError
// if the outcome failed.
func (o Of[T]) MustValue() T {
	value, err := o.Value()
	if err != nil {
		panic(err)
	}
	return value
}

// Err returns nil for a success, otherwise an error containing
// the message.
func (o Of[T]) Err() error {
	if o.successful {
		return nil
	}
	return errors.New(o.message)
}

// Outcome erases the type and returns the untyped outcome. The
// value becomes the payload, a message is kept as is.
func (o Of[T]) Outcome() Outcome {
	if !o.successful {
		return Outcome{message: o.message}
	}
	return Outcome{
		successful: true,
		hasPayload: true,
		payload:    o.value,
	}
}

// String implements the Stringer interface.
func (o Of[T]) String() string {
	if !o.successful {
		return fmt.Sprintf("failure(%q)", o.message)
	}
	return fmt.Sprintf("success(%v)", o.value)
}

// EOF
