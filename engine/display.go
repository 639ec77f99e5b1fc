package engine

import (
	"github.com/calebcase/bitcalc/bitvec"
	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/radix"
)

// ErrorKind is a calculation failure shown to the user in place of a result.
type ErrorKind int

// Error kinds.
const (
	None ErrorKind = iota
	DivisionByZero
	SignedFractionalConflict
)

func (k ErrorKind) String() string {
	switch k {
	case None:
		return ""
	case DivisionByZero:
		return "Cannot divide by zero"
	case SignedFractionalConflict:
		return "Signed fractional values are not supported"
	}

	return "Unknown error"
}

// DisplayState is everything a front end shows after an event.
type DisplayState struct {
	Value      decimal.Value
	InputText  string
	OutputText string
	Bits       bitvec.Vector
	Pending    string
	Error      ErrorKind
}

// Display renders the engine under c.
func (e *Engine) Display(c *Context) DisplayState {
	m := c.Mode()

	ds := DisplayState{
		Value:      e.current,
		InputText:  radix.Format(e.current, c.Conversion.InputSystem, m),
		OutputText: radix.Format(e.current, c.Conversion.OutputSystem, m),
		Bits:       c.Vector(e.current),
		Error:      e.err,
	}

	if e.typing {
		ds.InputText = e.input
	}

	if e.pending != nil {
		ds.Pending = radix.Format(e.pending.buffer, c.Conversion.InputSystem, m) + " " + e.pending.op.String()
	}

	if e.err != None {
		ds.OutputText = e.err.String()
	}

	return ds
}
