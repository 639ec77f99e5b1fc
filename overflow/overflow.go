// Package overflow wraps values into the range of a fixed width register.
//
// Overflow is never an error. A value outside the register range is reduced
// modulo 2^bits into it, the same way a hardware register would drop the
// carry:
//
//  unsigned  8-bit:  256 ->    0,   -1 -> 255
//  signed    8-bit:  128 -> -128, -129 -> 127
//
// Fractions are kept; only the integer part takes part in the wrap.
package overflow

import (
	"math/big"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/word"
)

// Range returns the inclusive bounds of a register.
func Range(size word.Size, signed bool) (min, max decimal.Value) {
	lo, hi := size.Bounds(signed)

	return decimal.NewFromBig(lo, 0), decimal.NewFromBig(hi, 0)
}

// Fix returns the representative of v within the range of size/signed.
func Fix(v decimal.Value, size word.Size, signed bool) decimal.Value {
	if InRange(v, size, signed) {
		return v
	}

	min, _ := Range(size, signed)
	m := size.Modulus()

	// floor(t / m) == floor(floor(t) / m) for integer m > 0, and big.Int.Div
	// is Euclidean which is floor division for a positive divisor.
	t := v.Sub(min).Floor().Big()
	k := new(big.Int).Div(t, m)

	return v.Sub(decimal.NewFromBig(k.Mul(k, m), 0))
}

// InRange reports whether v is representable without wrapping. A fraction
// on top of the maximum integer is still in range.
func InRange(v decimal.Value, size word.Size, signed bool) bool {
	min, max := Range(size, signed)

	return v.Cmp(min) >= 0 && v.Cmp(max.Add(decimal.New(1))) < 0
}
