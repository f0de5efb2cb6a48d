// Tideland Go Outcome
//
// Copyright (C) 2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package outcome // import "tideland.dev/go/outcome"

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

//--------------------
// CONSTANTS
//--------------------

// separator joins multiple failure messages.
const separator = "\n"

//--------------------
// OUTCOME
//--------------------

// Erasable is implemented by everything that can be converted into
// an untyped Outcome. Outcome itself and every Of[T] do so.
type Erasable interface {
	Outcome() Outcome
}

// Outcome is either a success with an optional payload of any type
// or a failure with a message. Once created it cannot be changed.
type Outcome struct {
	successful bool
	hasPayload bool
	payload    any
	message    string
}

// Success returns a successful outcome without payload.
func Success() Outcome {
	return Outcome{successful: true}
}

// SuccessWith returns a successful outcome carrying the payload. A nil
// payload is rejected, use Success() to signal a success without one.
func SuccessWith(payload any) (Outcome, error) {
	if payload == nil {
		return Outcome{}, NewError("SuccessWith", errors.New("payload cannot be nil"), ErrInvalidArgument)
	}
	return Outcome{
		successful: true,
		hasPayload: true,
		payload:    payload,
	}, nil
}

// MustSuccessWith is like SuccessWith but panics with the
// OutcomeError in case of a nil payload.
func MustSuccessWith(payload any) Outcome {
	o, err := SuccessWith(payload)
	if err != nil {
		panic(err)
	}
	return o
}

// Fail returns a failed outcome. Multiple messages are joined in
// their order with a newline, duplicates are kept.
func Fail(messages ...string) Outcome {
	return Outcome{
		message: strings.Join(messages, separator),
	}
}

// Successful returns true if the outcome is a success.
func (o Outcome) Successful() bool {
	return o.successful
}

// Failed returns true if the outcome is a failure.
func (o Outcome) Failed() bool {
	return !o.successful
}

// HasPayload returns true if the outcome is a success carrying a payload.
func (o Outcome) HasPayload() bool {
	return o.hasPayload
}

// Message returns the message of a failed outcome. It is empty
// for a success.
func (o Outcome) Message() string {
	return o.message
}

// Payload returns the payload of a successful outcome. It is nil for
// a success without payload. Reading the payload of a failure is a
// logic error of the caller and returns an ErrInvalidState.
func (o Outcome) Payload() (any, error) {
	if !o.successful {
		return nil, failedStateError("Payload", o.message)
	}
	return o.payload, nil
}

// MustPayload is like Payload but panics with the OutcomeError
// if the outcome failed.
func (o Outcome) MustPayload() any {
	payload, err := o.Payload()
	if err != nil {
		panic(err)
	}
	return payload
}

// Err returns nil for a success, otherwise an error containing
// the message.
func (o Outcome) Err() error {
	if o.successful {
		return nil
	}
	return errors.New(o.message)
}

// Outcome implements Erasable.
func (o Outcome) Outcome() Outcome {
	return o
}

// String implements the Stringer interface.
func (o Outcome) String() string {
	switch {
	case !o.successful:
		return fmt.Sprintf("failure(%q)", o.message)
	case o.hasPayload:
		return fmt.Sprintf("success(%v)", o.payload)
	default:
		return "success"
	}
}

//--------------------
// TYPED ACCESS
//--------------------

// As returns the payload of a successful outcome as a T. A failed
// outcome returns an ErrInvalidState, a payload of another type an
// ErrTypeMismatch.
func As[T any](o Outcome) (T, error) {
	var zero T
	payload, err := o.Payload()
	if err != nil {
		return zero, NewError("As", errors.Unwrap(err), ErrInvalidState)
	}
	return castPayload[T]("As", payload)
}

// MustAs is like As but panics with the OutcomeError.
func MustAs[T any](o Outcome) T {
	value, err := As[T](o)
	if err != nil {
		panic(err)
	}
	return value
}

// castPayload converts a payload into a T. A nil payload only
// matches interface types.
func castPayload[T any](op string, payload any) (T, error) {
	var zero T
	if payload == nil {
		if reflect.TypeFor[T]().Kind() == reflect.Interface {
			return zero, nil
		}
		return zero, typeMismatchError(op, payload, typeName[T]())
	}
	value, ok := payload.(T)
	if !ok {
		return zero, typeMismatchError(op, payload, typeName[T]())
	}
	return value, nil
}

// typeName returns the name of the type T, also for interface types.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// EOF
