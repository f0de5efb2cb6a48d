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
// CONSTANTS
//--------------------

// MaxCombine is the maximum number of outcomes Combine accepts.
const MaxCombine = 7

//--------------------
// COMBINE
//--------------------

// failer is the part of both outcome kinds needed to collect failures.
type failer interface {
	Failed() bool
	Message() string
}

// failureMessages returns the messages of all failed outcomes in
// their order. It is nil if none failed.
func failureMessages(outcomes ...failer) []string {
	var messages []string
	for _, o := range outcomes {
		if o.Failed() {
			messages = append(messages, o.Message())
		}
	}
	return messages
}

// Combine folds up to MaxCombine outcomes into one. If any of them
// failed the result is a failure with the messages of all failed
// outcomes joined in their order. Otherwise it is a success with a
// Tuple of all payloads as payload. Successes without payload get
// Unit in their slot.
//
// Combining nothing or a nil outcome returns an ErrInvalidArgument,
// more than MaxCombine outcomes an ErrUnsupported.
func Combine(outcomes ...Erasable) (Outcome, error) {
	switch {
	case len(outcomes) == 0:
		return Outcome{}, NewError("Combine", errors.New("no outcomes to combine"), ErrInvalidArgument)
	case len(outcomes) > MaxCombine:
		return Outcome{}, NewError("Combine", fmt.Errorf("cannot combine more than %d elements", MaxCombine), ErrUnsupported)
	}
	erased := make([]failer, len(outcomes))
	for i, e := range outcomes {
		if e == nil {
			return Outcome{}, NewError("Combine", fmt.Errorf("outcome %d is nil", i+1), ErrInvalidArgument)
		}
		erased[i] = e.Outcome()
	}
	if messages := failureMessages(erased...); messages != nil {
		return Fail(messages...), nil
	}
	slots := make([]any, len(erased))
	for i, f := range erased {
		o := f.(Outcome)
		if o.hasPayload {
			slots[i] = o.payload
		} else {
			slots[i] = Unit{}
		}
	}
	return Outcome{
		successful: true,
		hasPayload: true,
		payload:    Tuple{slots: slots},
	}, nil
}

// Combine2 combines two typed outcomes.
func Combine2[A, B any](a Of[A], b Of[B]) Of[Tuple2[A, B]] {
	if messages := failureMessages(a, b); messages != nil {
		return FailOf[Tuple2[A, B]](messages...)
	}
	return SuccessOf(Tuple2[A, B]{a.value, b.value})
}

// Combine3 combines three typed outcomes.
func Combine3[A, B, C any](a Of[A], b Of[B], c Of[C]) Of[Tuple3[A, B, C]] {
	if messages := failureMessages(a, b, c); messages != nil {
		return FailOf[Tuple3[A, B, C]](messages...)
	}
	return SuccessOf(Tuple3[A, B, C]{a.value, b.value, c.value})
}

// Combine4 combines four typed outcomes.
func Combine4[A, B, C, D any](a Of[A], b Of[B], c Of[C], d Of[D]) Of[Tuple4[A, B, C, D]] {
	if messages := failureMessages(a, b, c, d); messages != nil {
		return FailOf[Tuple4[A, B, C, D]](messages...)
	}
	return SuccessOf(Tuple4[A, B, C, D]{a.value, b.value, c.value, d.value})
}

// Combine5 combines five typed outcomes.
func Combine5[A, B, C, D, E any](a Of[A], b Of[B], c Of[C], d Of[D], e Of[E]) Of[Tuple5[A, B, C, D, E]] {
	if messages := failureMessages(a, b, c, d, e); messages != nil {
		return FailOf[Tuple5[A, B, C, D, E]](messages...)
	}
	return SuccessOf(Tuple5[A, B, C, D, E]{a.value, b.value, c.value, d.value, e.value})
}

// Combine6 combines six typed outcomes.
func Combine6[A, B, C, D, E, F any](a Of[A], b Of[B], c Of[C], d Of[D], e Of[E], f Of[F]) Of[Tuple6[A, B, C, D, E, F]] {
	if messages := failureMessages(a, b, c, d, e, f); messages != nil {
		return FailOf[Tuple6[A, B, C, D, E, F]](messages...)
	}
	return SuccessOf(Tuple6[A, B, C, D, E, F]{a.value, b.value, c.value, d.value, e.value, f.value})
}

// Combine7 combines seven typed outcomes.
func Combine7[A, B, C, D, E, F, G any](a Of[A], b Of[B], c Of[C], d Of[D], e Of[E], f Of[F], g Of[G]) Of[Tuple7[A, B, C, D, E, F, G]] {
	if messages := failureMessages(a, b, c, d, e, f, g); messages != nil {
		return FailOf[Tuple7[A, B, C, D, E, F, G]](messages...)
	}
	return SuccessOf(Tuple7[A, B, C, D, E, F, G]{a.value, b.value, c.value, d.value, e.value, f.value, g.value})
}

//--------------------
// UNPACK
//--------------------

// tupleSlots returns the slots of the combined payload of o. It
// has to be a Tuple with n slots.
func tupleSlots(op string, o Outcome, n int) ([]any, error) {
	payload, err := o.Payload()
	if err != nil {
		return nil, NewError(op, errors.Unwrap(err), ErrInvalidState)
	}
	t, ok := payload.(Tuple)
	if !ok {
		return nil, typeMismatchError(op, payload, "a combined tuple")
	}
	if t.Len() != n {
		return nil, NewError(op, fmt.Errorf("tuple has %d slots, not %d", t.Len(), n), ErrTypeMismatch)
	}
	return t.slots, nil
}

// castSlot returns slot i as a T.
func castSlot[T any](op string, slots []any, i int) (T, error) {
	return castPayload[T](fmt.Sprintf("%s slot %d", op, i+1), slots[i])
}

// Unpack2 destructures the payload of a combined outcome of two
// into typed values. The payload may be a Tuple or a Tuple2.
func Unpack2[A, B any](o Outcome) (Tuple2[A, B], error) {
	var t Tuple2[A, B]
	if typed, ok := o.payload.(Tuple2[A, B]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack2", o, 2)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack2", slots, 0); err != nil {
		return Tuple2[A, B]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack2", slots, 1); err != nil {
		return Tuple2[A, B]{}, err
	}
	return t, nil
}

// Unpack3 destructures the payload of a combined outcome of three
// into typed values. The payload may be a Tuple or a Tuple3.
func Unpack3[A, B, C any](o Outcome) (Tuple3[A, B, C], error) {
	var t Tuple3[A, B, C]
	if typed, ok := o.payload.(Tuple3[A, B, C]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack3", o, 3)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack3", slots, 0); err != nil {
		return Tuple3[A, B, C]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack3", slots, 1); err != nil {
		return Tuple3[A, B, C]{}, err
	}
	if t.V3, err = castSlot[C]("Unpack3", slots, 2); err != nil {
		return Tuple3[A, B, C]{}, err
	}
	return t, nil
}

// Unpack4 destructures the payload of a combined outcome of four
// into typed values. The payload may be a Tuple or a Tuple4.
func Unpack4[A, B, C, D any](o Outcome) (Tuple4[A, B, C, D], error) {
	var t Tuple4[A, B, C, D]
	if typed, ok := o.payload.(Tuple4[A, B, C, D]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack4", o, 4)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack4", slots, 0); err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack4", slots, 1); err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	if t.V3, err = castSlot[C]("Unpack4", slots, 2); err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	if t.V4, err = castSlot[D]("Unpack4", slots, 3); err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	return t, nil
}

// Unpack5 destructures the payload of a combined outcome of five
// into typed values. The payload may be a Tuple or a Tuple5.
func Unpack5[A, B, C, D, E any](o Outcome) (Tuple5[A, B, C, D, E], error) {
	var t Tuple5[A, B, C, D, E]
	if typed, ok := o.payload.(Tuple5[A, B, C, D, E]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack5", o, 5)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack5", slots, 0); err != nil {
		return Tuple5[A, B, C, D, E]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack5", slots, 1); err != nil {
		return Tuple5[A, B, C, D, E]{}, err
	}
	if t.V3, err = castSlot[C]("Unpack5", slots, 2); err != nil {
		return Tuple5[A, B, C, D, E]{}, err
	}
	if t.V4, err = castSlot[D]("Unpack5", slots, 3); err != nil {
		return Tuple5[A, B, C, D, E]{}, err
	}
	if t.V5, err = castSlot[E]("Unpack5", slots, 4); err != nil {
		return Tuple5[A, B, C, D, E]{}, err
	}
	return t, nil
}

// Unpack6 destructures the payload of a combined outcome of six
// into typed values. The payload may be a Tuple or a Tuple6.
func Unpack6[A, B, C, D, E, F any](o Outcome) (Tuple6[A, B, C, D, E, F], error) {
	var t Tuple6[A, B, C, D, E, F]
	if typed, ok := o.payload.(Tuple6[A, B, C, D, E, F]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack6", o, 6)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack6", slots, 0); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack6", slots, 1); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	if t.V3, err = castSlot[C]("Unpack6", slots, 2); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	if t.V4, err = castSlot[D]("Unpack6", slots, 3); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	if t.V5, err = castSlot[E]("Unpack6", slots, 4); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	if t.V6, err = castSlot[F]("Unpack6", slots, 5); err != nil {
		return Tuple6[A, B, C, D, E, F]{}, err
	}
	return t, nil
}

// Unpack7 destructures the payload of a combined outcome of seven
// into typed values. The payload may be a Tuple or a Tuple7.
func Unpack7[A, B, C, D, E, F, G any](o Outcome) (Tuple7[A, B, C, D, E, F, G], error) {
	var t Tuple7[A, B, C, D, E, F, G]
	if typed, ok := o.payload.(Tuple7[A, B, C, D, E, F, G]); ok && o.successful {
		return typed, nil
	}
	slots, err := tupleSlots("Unpack7", o, 7)
	if err != nil {
		return t, err
	}
	if t.V1, err = castSlot[A]("Unpack7", slots, 0); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V2, err = castSlot[B]("Unpack7", slots, 1); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V3, err = castSlot[C]("Unpack7", slots, 2); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V4, err = castSlot[D]("Unpack7", slots, 3); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V5, err = castSlot[E]("Unpack7", slots, 4); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V6, err = castSlot[F]("Unpack7", slots, 5); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	if t.V7, err = castSlot[G]("Unpack7", slots, 6); err != nil {
		return Tuple7[A, B, C, D, E, F, G]{}, err
	}
	return t, nil
}

// EOF
