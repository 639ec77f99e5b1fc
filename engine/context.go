package engine

import (
	"github.com/calebcase/bitcalc/bitvec"
	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/integer"
	"github.com/calebcase/bitcalc/overflow"
	"github.com/calebcase/bitcalc/radix"
	"github.com/calebcase/bitcalc/settings"
	"github.com/calebcase/bitcalc/word"
)

// Context is the session configuration every engine call honors. The engine
// changes Size and Signed when the user does; everything else is owned by the
// caller.
type Context struct {
	Size       word.Size
	Signed     bool
	Conversion settings.Conversion
}

// NewContext returns the context described by a persisted state.
func NewContext(s settings.State) *Context {
	return &Context{
		Size:       s.Word.WordSize,
		Signed:     s.Calculator.SignedMode,
		Conversion: s.Conversion,
	}
}

// Mode returns the register text is read from and written for.
func (c *Context) Mode() radix.Mode {
	return radix.Mode{
		Size:     c.Size,
		Signed:   c.Signed,
		Fraction: c.Conversion.FractionalWidth,
	}
}

// Fix truncates v to the fraction precision and wraps it into the register.
func (c *Context) Fix(v decimal.Value) decimal.Value {
	if c.Conversion.FractionalWidth == 0 {
		v = v.IntPart()
	} else {
		v = v.Truncate(decimal.MaxFractionDigits)
	}

	return overflow.Fix(v, c.Size, c.Signed)
}

// Vector returns the bits of v with the configured fraction width.
func (c *Context) Vector(v decimal.Value) bitvec.Vector {
	return bitvec.FromDecimal(v, c.Size, c.Conversion.FractionalWidth, c.Signed)
}

// operand returns the bits operators act on: fraction bits are only included
// when v has a fraction.
func (c *Context) operand(v decimal.Value) bitvec.Vector {
	if !v.HasFraction() {
		return bitvec.FromDecimal(v, c.Size, 0, c.Signed)
	}

	return c.Vector(v)
}

// reinterpret reads the register bits of v again under the current sign
// mode. Values with a fraction are wrapped as a whole.
func (c *Context) reinterpret(v decimal.Value) decimal.Value {
	if v.HasFraction() {
		return overflow.Fix(v, c.Size, c.Signed)
	}

	schema := integer.Schema{Bits: uint64(c.Size.Bits()), Signed: c.Signed}

	b, err := schema.FromPattern(v.Big())
	if err != nil {
		return overflow.Fix(v, c.Size, c.Signed)
	}

	return decimal.NewFromBig(b.Big(), 0)
}
