// Tideland Go Outcome
//
// Copyright (C) 2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package outcome provides values that are either a success, optionally
carrying a payload, or a failure carrying a human readable message. They
are meant for the expected failures of an operation, e.g. validations,
so that those don't need to travel as errors through the program.

# Outcomes

The untyped Outcome holds its payload as any:

	o, err := outcome.SuccessWith(order)
	if err != nil {
		// Only a nil payload is rejected.
		return err
	}
	signal := outcome.Success()
	failed := outcome.Fail("quantity must be positive", "unknown product")

Multiple failure messages are joined by a newline in their order.
Reading the payload of a failed outcome is a logic error of the caller.
Payload() and As() return an OutcomeError with the code ErrInvalidState
in this case, MustPayload() and MustAs() panic with it.

The typed Of[T] keeps the static type until it has to be erased:

	name := outcome.SuccessOf("Alice")
	age := outcome.FailOf[int]("age is missing")

	untyped := name.Outcome()

# Combining

Combine folds up to seven outcomes into one. Every input is checked, so
the failure carries the messages of all failed inputs:

	o, err := outcome.Combine(outcome.Fail("Error 1"), outcome.SuccessOf(1), outcome.Fail("Error 2"))
	// err is nil, o.Message() is "Error 1\nError 2".

If all inputs succeeded the payload is a Tuple keeping each payload
with its own type. UnpackN destructures it again:

	o, _ := outcome.Combine(outcome.SuccessOf("Value"), outcome.SuccessOf(1), outcome.SuccessOf(now))
	t, err := outcome.Unpack3[string, int, time.Time](o)
	text, number, date := t.Unpack()

When all types are known at compile time Combine2 to Combine7 do the
same without any runtime checks:

	c := outcome.Combine3(outcome.SuccessOf("Value"), outcome.SuccessOf(1), outcome.SuccessOf(now))
	text, number, date := c.MustValue().Unpack()
*/
package outcome

// EOF
