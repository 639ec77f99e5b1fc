// Package decimal provides the signed decimal value a programmer's calculator
// operates on.
//
// A Value is an immutable base 10 number with an integer part and a bounded
// number of fraction digits:
//
//  number = integer part + fraction part
//
// For example:
//
//  -12.625 = -12 + -0.625
//
// Arithmetic
//
// Addition, subtraction and multiplication are exact. Division is rounded to
// MaxFractionDigits+1 digits and then truncated to MaxFractionDigits digits so
// that repeated divisions never grow the fraction. Division by zero returns
// ErrDivisionByZero and no value.
//
// Bitwise Operations
//
// AND, OR, XOR, NOR, NOT and the shifts drop the fraction part and operate on
// the 64-bit two's complement pattern of the integer part:
//
//  -1 AND 5
//
//  | 1111 ... 1111 1111 | -1
//  | 0000 ... 0000 0101 |  5
//  |--------------------|
//  | 0000 ... 0000 0101 |  5
//
// The result is always the unsigned interpretation of the 64-bit pattern.
// Narrowing it to a register width and sign mode is left to the overflow
// package.
package decimal
