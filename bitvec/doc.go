// Package bitvec provides the fixed width bit vector a value is displayed
// and edited as.
//
// A Vector has an integer part and a fraction part:
//
//  | i(n-1) ... i(1) i(0) . f(0) f(1) ... f(m-1) |
//
// Integer bit 0 is the least significant bit. Fraction bit 0 is the first bit
// after the radix point (weight 1/2). Together they form one fixed point
// number; complement and increment treat f(m-1) as the least significant bit
// of the whole vector.
//
// Encoding
//
// The integer part is produced by repeatedly dividing the magnitude by two
// and collecting remainders least significant first until the register is
// full. Higher bits are dropped. The fraction part is produced by repeatedly
// doubling the fraction magnitude and emitting 1 whenever it reaches 1. The
// fraction is truncated, never rounded:
//
//  5.3 with 4 fraction bits
//
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 1 | . | 0 . 1 . 0 . 0 |  = 5.25
//
// Negative values in signed mode are encoded as the two's complement of the
// magnitude. The carry out of the most significant bit is discarded, which
// makes the most negative value its own complement.
//
// All operations return a new Vector; a Vector is never modified in place.
package bitvec
