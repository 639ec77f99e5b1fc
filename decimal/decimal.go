package decimal

import (
	"math/big"

	"github.com/calebcase/oops"
	sd "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/bitcalc/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = Error.New("division by zero")

// MaxFractionDigits bounds the fraction digits kept by Div.
const MaxFractionDigits = 16

var pattern64 = integer.Schema{Bits: 64}

// Value is a signed decimal number. The zero Value is 0.
type Value struct {
	d sd.Decimal
}

// Zero is the value 0.
var Zero = Value{}

// New returns the value of v.
func New(v int64) Value {
	return Value{d: sd.NewFromInt(v)}
}

// NewFromUint64 returns the value of u.
func NewFromUint64(u uint64) Value {
	return Value{d: sd.NewFromBigInt(new(big.Int).SetUint64(u), 0)}
}

// NewFromBig returns i * 10^exp.
func NewFromBig(i *big.Int, exp int32) Value {
	return Value{d: sd.NewFromBigInt(i, exp)}
}

// NewFromString parses a decimal string such as "-12.625".
func NewFromString(s string) (Value, error) {
	d, err := sd.NewFromString(s)
	if err != nil {
		return Zero, Error.Wrap(err)
	}

	return Value{d: d}, nil
}

// MustParse is NewFromString that panics on malformed input.
func MustParse(s string) Value {
	v, err := NewFromString(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return Value{d: v.d.Add(o.d)}
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value {
	return Value{d: v.d.Sub(o.d)}
}

// Mul returns v * o.
func (v Value) Mul(o Value) Value {
	return Value{d: v.d.Mul(o.d)}
}

// Div returns v / o truncated to MaxFractionDigits.
func (v Value) Div(o Value) (Value, error) {
	if o.IsZero() {
		return Zero, oops.Trace(ErrDivisionByZero)
	}

	q := v.d.DivRound(o.d, MaxFractionDigits+1).Truncate(MaxFractionDigits)

	return Value{d: q}, nil
}

// Cmp returns -1, 0 or +1 depending on whether v is less than, equal to, or
// greater than o.
func (v Value) Cmp(o Value) int {
	return v.d.Cmp(o.d)
}

// Equal reports whether v == o.
func (v Value) Equal(o Value) bool {
	return v.d.Equal(o.d)
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.d.Sign()
}

// IsZero reports whether v == 0.
func (v Value) IsZero() bool {
	return v.d.IsZero()
}

// Negative reports whether v < 0.
func (v Value) Negative() bool {
	return v.d.Sign() < 0
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{d: v.d.Neg()}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{d: v.d.Abs()}
}

// IntPart returns v with the fraction dropped (rounded toward zero).
func (v Value) IntPart() Value {
	return Value{d: v.d.Truncate(0)}
}

// FracPart returns v - v.IntPart(). It carries the sign of v.
func (v Value) FracPart() Value {
	return Value{d: v.d.Sub(v.d.Truncate(0))}
}

// HasFraction reports whether v has a non-zero fraction part.
func (v Value) HasFraction() bool {
	return !v.FracPart().IsZero()
}

// Floor returns the greatest integer value <= v.
func (v Value) Floor() Value {
	return Value{d: v.d.Floor()}
}

// Truncate drops fraction digits beyond places.
func (v Value) Truncate(places int32) Value {
	return Value{d: v.d.Truncate(places)}
}

// Big returns the integer part of v.
func (v Value) Big() *big.Int {
	return v.d.BigInt()
}

// Block returns the integer part of v as a sign-magnitude block.
func (v Value) Block() integer.Block {
	return integer.FromBig(v.Big())
}

// Pattern returns the 64-bit two's complement pattern of the integer part.
func (v Value) Pattern() uint64 {
	// Uint64 only fails for schemas wider than 64 bits.
	p, _ := pattern64.Uint64(v.Block())

	return p
}

// And returns the bitwise AND of the integer parts.
func (v Value) And(o Value) Value {
	return NewFromUint64(v.Pattern() & o.Pattern())
}

// Or returns the bitwise OR of the integer parts.
func (v Value) Or(o Value) Value {
	return NewFromUint64(v.Pattern() | o.Pattern())
}

// Xor returns the bitwise XOR of the integer parts.
func (v Value) Xor(o Value) Value {
	return NewFromUint64(v.Pattern() ^ o.Pattern())
}

// Nor returns the inverted bitwise OR of the integer parts.
func (v Value) Nor(o Value) Value {
	return NewFromUint64(^(v.Pattern() | o.Pattern()))
}

// Not returns the inverted integer part.
func (v Value) Not() Value {
	return NewFromUint64(^v.Pattern())
}

// Shl shifts the integer part left by n bits. A negative n shifts right.
func (v Value) Shl(n int) Value {
	if n <= -64 || n >= 64 {
		return Zero
	}
	if n < 0 {
		return v.Shr(-n)
	}

	return NewFromUint64(v.Pattern() << uint(n))
}

// Shr shifts the integer part right by n bits. A negative n shifts left.
func (v Value) Shr(n int) Value {
	if n <= -64 || n >= 64 {
		return Zero
	}
	if n < 0 {
		return v.Shl(-n)
	}

	return NewFromUint64(v.Pattern() >> uint(n))
}

func (v Value) String() string {
	return v.d.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) (err error) {
	*v, err = NewFromString(string(text))

	return err
}
