package bitvec

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/word"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bitvec")

// MaxFraction is the largest supported fraction width.
const MaxFraction = 16

// Vector is an immutable sequence of integer and fraction bits.
type Vector struct {
	integer  []bool
	fraction []bool
}

// New returns an all zero vector.
func New(size, fraction int) Vector {
	if size < 0 {
		size = 0
	}
	if fraction < 0 {
		fraction = 0
	}

	return Vector{
		integer:  make([]bool, size),
		fraction: make([]bool, fraction),
	}
}

func (v Vector) clone() Vector {
	c := New(len(v.integer), len(v.fraction))
	copy(c.integer, v.integer)
	copy(c.fraction, v.fraction)

	return c
}

// Size returns the number of integer bits.
func (v Vector) Size() int {
	return len(v.integer)
}

// FractionWidth returns the number of fraction bits.
func (v Vector) FractionWidth() int {
	return len(v.fraction)
}

// Bit returns integer bit i (0 is the least significant bit).
func (v Vector) Bit(i int) bool {
	if i < 0 || i >= len(v.integer) {
		return false
	}

	return v.integer[i]
}

// SetBit returns a copy of v with integer bit i set to b.
func (v Vector) SetBit(i int, b bool) (Vector, error) {
	if i < 0 || i >= len(v.integer) {
		return v, Error.New("bit out of range: index=%d size=%d", i, len(v.integer))
	}

	c := v.clone()
	c.integer[i] = b

	return c, nil
}

// FracBit returns fraction bit i (0 is the bit right after the point).
func (v Vector) FracBit(i int) bool {
	if i < 0 || i >= len(v.fraction) {
		return false
	}

	return v.fraction[i]
}

// SetFracBit returns a copy of v with fraction bit i set to b.
func (v Vector) SetFracBit(i int, b bool) (Vector, error) {
	if i < 0 || i >= len(v.fraction) {
		return v, Error.New("fraction bit out of range: index=%d width=%d", i, len(v.fraction))
	}

	c := v.clone()
	c.fraction[i] = b

	return c, nil
}

// Integer returns a copy of the integer bits, least significant first.
func (v Vector) Integer() []bool {
	return append([]bool(nil), v.integer...)
}

// Fraction returns a copy of the fraction bits, most significant first.
func (v Vector) Fraction() []bool {
	return append([]bool(nil), v.fraction...)
}

// HasFraction reports whether any fraction bit is set.
func (v Vector) HasFraction() bool {
	for _, b := range v.fraction {
		if b {
			return true
		}
	}

	return false
}

// IsZero reports whether every bit is clear.
func (v Vector) IsZero() bool {
	for _, b := range v.integer {
		if b {
			return false
		}
	}

	return !v.HasFraction()
}

// Equal reports whether v and o have the same dimensions and bits.
func (v Vector) Equal(o Vector) bool {
	return v.String() == o.String()
}

// Resize returns v with the integer part zero extended or truncated from the
// most significant side, and the fraction zero padded or truncated on the
// right.
func (v Vector) Resize(size, fraction int) Vector {
	c := New(size, fraction)
	copy(c.integer, v.integer)
	copy(c.fraction, v.fraction)

	return c
}

// FromDecimal encodes v into a vector of the given size and fraction width.
func FromDecimal(v decimal.Value, size word.Size, fraction int, signed bool) Vector {
	if fraction > MaxFraction {
		fraction = MaxFraction
	}

	out := New(size.Bits(), fraction)

	mag := v.Abs()

	q := mag.IntPart().Big()
	r := new(big.Int)
	two := big.NewInt(2)

	for i := 0; i < len(out.integer) && q.Sign() != 0; i++ {
		q.QuoRem(q, two, r)
		out.integer[i] = r.Sign() != 0
	}

	f := mag.FracPart()
	one := decimal.New(1)
	for i := 0; i < len(out.fraction) && !f.IsZero(); i++ {
		f = f.Add(f)
		if f.Cmp(one) >= 0 {
			out.fraction[i] = true
			f = f.Sub(one)
		}
	}

	if signed && v.Negative() {
		return out.Complement2()
	}

	return out
}

// Decimal decodes the vector. In signed mode the most significant integer bit
// carries the sign.
func (v Vector) Decimal(signed bool) decimal.Value {
	c := new(big.Int)

	for i := len(v.integer) - 1; i >= 0; i-- {
		c.Lsh(c, 1)
		if v.integer[i] {
			c.SetBit(c, 0, 1)
		}
	}

	for _, b := range v.fraction {
		c.Lsh(c, 1)
		if b {
			c.SetBit(c, 0, 1)
		}
	}

	width := len(v.integer) + len(v.fraction)
	if signed && len(v.integer) > 0 && v.integer[len(v.integer)-1] {
		c.Sub(c, new(big.Int).Lsh(big.NewInt(1), uint(width)))
	}

	// c / 2^m == c * 5^m / 10^m, which is exact.
	m := int64(len(v.fraction))
	c.Mul(c, new(big.Int).Exp(big.NewInt(5), big.NewInt(m), nil))

	return decimal.NewFromBig(c, -int32(m))
}

// Complement1 returns v with every bit inverted.
func (v Vector) Complement1() Vector {
	c := v.clone()

	for i := range c.integer {
		c.integer[i] = !c.integer[i]
	}
	for i := range c.fraction {
		c.fraction[i] = !c.fraction[i]
	}

	return c
}

// Complement2 returns the two's complement of v.
func (v Vector) Complement2() Vector {
	return v.Complement1().Increment()
}

// Increment adds one unit in the last place, rippling the carry toward the
// most significant bit. The final carry is discarded.
func (v Vector) Increment() Vector {
	c := v.clone()

	for i := len(c.fraction) - 1; i >= 0; i-- {
		if !c.fraction[i] {
			c.fraction[i] = true

			return c
		}
		c.fraction[i] = false
	}

	for i := range c.integer {
		if !c.integer[i] {
			c.integer[i] = true

			return c
		}
		c.integer[i] = false
	}

	return c
}

// ShiftLeft shifts the integer bits toward the most significant bit by one.
// A vector with a fraction is returned unchanged.
func (v Vector) ShiftLeft() Vector {
	c := v.clone()
	if v.HasFraction() || len(c.integer) == 0 {
		return c
	}

	copy(c.integer[1:], v.integer[:len(v.integer)-1])
	c.integer[0] = false

	return c
}

// ShiftRight shifts the integer bits toward the least significant bit by one.
// A vector with a fraction is returned unchanged.
func (v Vector) ShiftRight() Vector {
	c := v.clone()
	if v.HasFraction() || len(c.integer) == 0 {
		return c
	}

	copy(c.integer, v.integer[1:])
	c.integer[len(c.integer)-1] = false

	return c
}

// Shift shifts left by n bits, or right by -n bits. Shifting by 64 or more
// in either direction clears the vector.
func (v Vector) Shift(n int) Vector {
	if n >= word.Max.Bits() || n <= -word.Max.Bits() {
		return New(len(v.integer), len(v.fraction))
	}

	c := v.clone()

	step := Vector.ShiftLeft
	if n < 0 {
		step = Vector.ShiftRight
		n = -n
	}

	for i := 0; i < n; i++ {
		c = step(c)
	}

	return c
}

func combine(a, b Vector, fn func(x, y bool) bool) Vector {
	size := len(a.integer)
	if len(b.integer) > size {
		size = len(b.integer)
	}

	fraction := len(a.fraction)
	if len(b.fraction) > fraction {
		fraction = len(b.fraction)
	}

	a = a.Resize(size, fraction)
	b = b.Resize(size, fraction)

	out := New(size, fraction)
	for i := range out.integer {
		out.integer[i] = fn(a.integer[i], b.integer[i])
	}
	for i := range out.fraction {
		out.fraction[i] = fn(a.fraction[i], b.fraction[i])
	}

	return out
}

// And returns the bitwise AND of a and b, zero padded to the longer operand.
func And(a, b Vector) Vector {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or returns the bitwise OR of a and b, zero padded to the longer operand.
func Or(a, b Vector) Vector {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// Xor returns the bitwise XOR of a and b, zero padded to the longer operand.
func Xor(a, b Vector) Vector {
	return combine(a, b, func(x, y bool) bool { return x != y })
}

// Nor returns the inverted bitwise OR of a and b.
func Nor(a, b Vector) Vector {
	return Or(a, b).Complement1()
}

// Parse reads a vector written most significant bit first, e.g. "1010.01".
// Spaces and underscores are ignored.
func Parse(s string) (v Vector, err error) {
	s = strings.NewReplacer(" ", "", "_", "").Replace(s)

	ip, fp, dot := strings.Cut(s, ".")
	if ip == "" && fp == "" {
		return Vector{}, Error.New("empty vector %q", s)
	}
	if dot && fp == "" {
		return Vector{}, Error.New("empty fraction %q", s)
	}

	v = New(len(ip), len(fp))

	for i, r := range ip {
		switch r {
		case '0':
		case '1':
			v.integer[len(ip)-1-i] = true
		default:
			return Vector{}, Error.New("invalid bit %q in %q", r, s)
		}
	}

	for i, r := range fp {
		switch r {
		case '0':
		case '1':
			v.fraction[i] = true
		default:
			return Vector{}, Error.New("invalid bit %q in %q", r, s)
		}
	}

	return v, nil
}

// MustParse is Parse that panics on malformed input.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// String returns the bits most significant first with a "." before the
// fraction when the vector has one.
func (v Vector) String() string {
	sb := &strings.Builder{}

	for i := len(v.integer) - 1; i >= 0; i-- {
		sb.WriteByte(bitChar(v.integer[i]))
	}

	if len(v.fraction) > 0 {
		sb.WriteByte('.')
		for _, b := range v.fraction {
			sb.WriteByte(bitChar(b))
		}
	}

	return sb.String()
}

func bitChar(b bool) byte {
	if b {
		return '1'
	}

	return '0'
}
