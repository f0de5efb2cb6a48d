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
	"fmt"
	"strings"
)

//--------------------
// UNIT
//--------------------

// Unit is placed into the tuple slot of a combined success
// without payload.
type Unit struct{}

// String implements the Stringer interface.
func (Unit) String() string {
	return "()"
}

//--------------------
// DYNAMIC TUPLE
//--------------------

// Tuple is the payload of a successful Combine. It holds the payloads
// of the combined outcomes in their order, each one with its own type.
type Tuple struct {
	slots []any
}

// Len returns the number of slots.
func (t Tuple) Len() int {
	return len(t.slots)
}

// At returns the payload in slot i. It panics if i is out of range,
// like indexing a slice.
func (t Tuple) At(i int) any {
	return t.slots[i]
}

// Values returns a copy of all slot payloads.
func (t Tuple) Values() []any {
	return append([]any(nil), t.slots...)
}

// String implements the Stringer interface.
func (t Tuple) String() string {
	parts := make([]string, len(t.slots))
	for i, slot := range t.slots {
		parts[i] = fmt.Sprintf("%v", slot)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Slot returns the payload of slot i as a T. An index out of range
// returns an ErrInvalidArgument, a payload of another type an
// ErrTypeMismatch.
func Slot[T any](t Tuple, i int) (T, error) {
	if i < 0 || i >= len(t.slots) {
		var zero T
		return zero, NewError("Slot", fmt.Errorf("index %d out of range [0:%d]", i, len(t.slots)), ErrInvalidArgument)
	}
	return castPayload[T]("Slot", t.slots[i])
}

//--------------------
// TYPED TUPLES
//--------------------

// Tuple2 is the record of two combined values.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Unpack returns the single values.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Len returns the number of values.
func (t Tuple2[A, B]) Len() int {
	return 2
}

// Values returns the values in order.
func (t Tuple2[A, B]) Values() []any {
	return []any{t.V1, t.V2}
}

// Tuple3 is the record of three combined values.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Unpack returns the single values.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}

// Len returns the number of values.
func (t Tuple3[A, B, C]) Len() int {
	return 3
}

// Values returns the values in order.
func (t Tuple3[A, B, C]) Values() []any {
	return []any{t.V1, t.V2, t.V3}
}

// Tuple4 is the record of four combined values.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Unpack returns the single values.
func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.V1, t.V2, t.V3, t.V4
}

// Len returns the number of values.
func (t Tuple4[A, B, C, D]) Len() int {
	return 4
}

// Values returns the values in order.
func (t Tuple4[A, B, C, D]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4}
}

// Tuple5 is the record of five combined values.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Unpack returns the single values.
func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

// Len returns the number of values.
func (t Tuple5[A, B, C, D, E]) Len() int {
	return 5
}

// Values returns the values in order.
func (t Tuple5[A, B, C, D, E]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5}
}

// Tuple6 is the record of six combined values.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Unpack returns the single values.
func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

// Len returns the number of values.
func (t Tuple6[A, B, C, D, E, F]) Len() int {
	return 6
}

// Values returns the values in order.
func (t Tuple6[A, B, C, D, E, F]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6}
}

// Tuple7 is the record of seven combined values, the most
// Combine supports.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Unpack returns the single values.
func (t Tuple7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

// Len returns the number of values.
func (t Tuple7[A, B, C, D, E, F, G]) Len() int {
	return 7
}

// Values returns the values in order.
func (t Tuple7[A, B, C, D, E, F, G]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7}
}

// EOF
