// Package engine sequences the operations typed into the calculator.
//
// The engine holds the current value, the text being typed, and at most one
// pending binary operation:
//
//  Idle ---- binary operator ----> Pending(buffer, operator)
//   ^                                  |
//   |                                  | operator with no new operand:
//   |                                  |   replace operator
//   |                                  | operator after a new operand:
//   |                                  |   buffer = buffer OP input
//   +------- "=", unary, clear --------+
//
// Every result is truncated to the configured fraction precision and wrapped
// into the register described by the Context before it is shown. The Context
// is read on every call, so a change of word size or sign mode takes effect
// on the next event.
//
// Division by zero and sign toggles on negative fractions are not Go errors:
// they put the engine in an error display state, reset the value to zero and
// drop the pending operation. Go errors are returned only for events the
// engine refuses (a digit outside the input radix, an unknown word size, a bit
// index outside the register); those leave the engine untouched.
package engine
