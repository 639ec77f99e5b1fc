package engine

import (
	"errors"
	"strings"
	"unicode"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/radix"
	"github.com/calebcase/bitcalc/word"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("engine")

// ErrInvalidEvent is returned for events the engine refuses.
var ErrInvalidEvent = Error.New("invalid event")

type pending struct {
	buffer decimal.Value
	op     BinaryOperator
}

// Engine is the operation sequencing state machine. The zero Engine shows 0
// with nothing pending.
type Engine struct {
	current decimal.Value

	// input is the text typed since the last commit. It is only meaningful
	// while typing is true; once false the next digit starts a new operand.
	input  string
	typing bool

	// entered is set once the current value was edited since the last
	// operator, whether typed, negated or changed bit by bit.
	entered bool

	pending *pending
	err     ErrorKind
}

// New returns an engine showing 0.
func New() *Engine {
	return &Engine{}
}

// Evaluate applies ev under c and returns what should be shown. A non-nil
// error means the event was refused and the engine is unchanged.
func (e *Engine) Evaluate(c *Context, ev Event) (_ DisplayState, err error) {
	prev := e.err
	e.err = None

	switch ev := ev.(type) {
	case Digit:
		err = e.digit(c, ev.Symbol)
	case Dot:
		e.dot(c)
	case Clear:
		e.clear()
	case Negate:
		e.negate(c)
	case Binary:
		err = e.binary(c, ev.Op)
	case Unary:
		e.unary(c, ev.Op)
	case Complement:
		e.complement(c, ev.Op)
	case Equals:
		err = e.equals(c)
	case BitToggle:
		err = e.bitToggle(c, ev)
	case SignModeToggled:
		e.toggleSign(c)
	case WordSizeChanged:
		err = e.changeSize(c, ev.Size)
	default:
		err = oops.Trace(ErrInvalidEvent)
	}

	if err != nil {
		e.err = prev

		Logger().Debug("event refused", zap.Any("event", ev), zap.Error(err))

		return e.Display(c), err
	}

	Logger().Debug("event",
		zap.Any("event", ev),
		zap.Stringer("value", e.current),
		zap.Bool("pending", e.pending != nil),
	)

	return e.Display(c), nil
}

// Value returns the current value.
func (e *Engine) Value() decimal.Value {
	return e.current
}

func (e *Engine) commit(v decimal.Value) {
	e.current = v
	e.input = ""
	e.typing = false
	e.entered = false
}

func (e *Engine) fail(kind ErrorKind) {
	Logger().Warn("operation failed", zap.Stringer("error", kind))

	e.err = kind
	e.pending = nil
	e.commit(decimal.Zero)
}

func (e *Engine) digit(c *Context, symbol rune) error {
	r := c.Conversion.InputSystem
	if !radix.ValidDigit(r, symbol) {
		return oops.Trace(radix.ErrInvalidDigit)
	}

	text := ""
	if e.typing {
		text = e.input
	}

	switch text {
	case "0":
		text = ""
	case "-0":
		text = "-"
	}

	next := text + string(unicode.ToUpper(symbol))

	if _, frac, ok := strings.Cut(next, "."); ok && !fractionFits(c, r, len(frac)) {
		return nil
	}

	v, err := radix.Parse(next, r, c.Mode())
	if errors.Is(err, radix.ErrOutOfRange) {
		// The digit would overflow the register; ignore it.
		return nil
	}
	if err != nil {
		return err
	}

	e.current = v
	e.input = next
	e.typing = true
	e.entered = true

	return nil
}

func fractionFits(c *Context, r radix.Radix, digits int) bool {
	fw := c.Conversion.FractionalWidth

	if r == radix.Decimal {
		return fw > 0 && digits <= decimal.MaxFractionDigits
	}

	return digits*r.GroupBits() <= fw
}

func (e *Engine) dot(c *Context) {
	if c.Conversion.FractionalWidth == 0 {
		return
	}

	if !e.typing {
		e.current = decimal.Zero
		e.input = "0"
		e.typing = true
		e.entered = true
	}

	if strings.Contains(e.input, ".") {
		return
	}

	e.input += "."
}

func (e *Engine) clear() {
	e.pending = nil
	e.commit(decimal.Zero)
}

func (e *Engine) negate(c *Context) {
	v := c.Fix(e.current.Neg())
	e.current = v
	e.entered = true

	if e.typing {
		text := strings.ReplaceAll(radix.Format(v, c.Conversion.InputSystem, c.Mode()), " ", "")

		// Keep a point typed without fraction digits yet.
		if strings.HasSuffix(e.input, ".") && !strings.Contains(text, ".") {
			text += "."
		}

		e.input = text
	}
}

func (e *Engine) binary(c *Context, op BinaryOperator) error {
	switch {
	case e.pending == nil:
		e.pending = &pending{buffer: e.current, op: op}
	case !e.entered:
		e.pending.op = op
	default:
		res, ok, err := e.resolve(c)
		if !ok {
			return err
		}

		e.pending = &pending{buffer: res, op: op}
		e.current = res
	}

	e.commit(e.current)

	return nil
}

func (e *Engine) equals(c *Context) error {
	if e.pending == nil {
		return nil
	}

	res, ok, err := e.resolve(c)
	if !ok {
		return err
	}

	e.pending = nil
	e.commit(res)

	return nil
}

// resolve computes the pending operation against the current value. When ok
// is false the caller must stop: either err is set, or the engine has entered
// an error state.
func (e *Engine) resolve(c *Context) (res decimal.Value, ok bool, err error) {
	res, err = compute(c, e.pending.buffer, e.pending.op, e.current)
	if errors.Is(err, decimal.ErrDivisionByZero) {
		e.fail(DivisionByZero)

		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	return res, true, nil
}

func (e *Engine) unary(c *Context, op UnaryOperator) {
	v := c.operand(e.current)

	switch op {
	case ShiftLeft:
		v = v.ShiftLeft()
	case ShiftRight:
		v = v.ShiftRight()
	}

	e.pending = nil
	e.commit(c.Fix(v.Decimal(c.Signed)))
}

func (e *Engine) complement(c *Context, op ComplementOperator) {
	v := c.operand(e.current)

	switch op {
	case OnesComplement:
		v = v.Complement1()
	case TwosComplement:
		v = v.Complement2()
	}

	e.pending = nil
	e.commit(c.Fix(v.Decimal(c.Signed)))
}

func (e *Engine) bitToggle(c *Context, ev BitToggle) (err error) {
	v := c.Vector(e.current)

	if ev.Fraction {
		v, err = v.SetFracBit(ev.Index, ev.Value)
	} else {
		v, err = v.SetBit(ev.Index, ev.Value)
	}
	if err != nil {
		return Error.Wrap(err)
	}

	e.commit(c.Fix(v.Decimal(c.Signed)))
	e.entered = true

	return nil
}

// signedFraction reports whether re-interpreting v under the other sign mode
// would involve a negative fraction.
func signedFraction(v, r decimal.Value) bool {
	return v.HasFraction() && (v.Negative() || r.Negative())
}

func (e *Engine) toggleSign(c *Context) {
	c.Signed = !c.Signed

	v := c.reinterpret(e.current)
	if signedFraction(e.current, v) {
		e.fail(SignedFractionalConflict)

		return
	}

	if e.pending != nil {
		b := c.reinterpret(e.pending.buffer)
		if signedFraction(e.pending.buffer, b) {
			e.pending = nil
		} else {
			e.pending.buffer = b
		}
	}

	entered := e.entered
	e.commit(v)
	e.entered = entered
}

func (e *Engine) changeSize(c *Context, size word.Size) error {
	if !size.Valid() {
		return Error.New("unsupported word size %d", size)
	}

	c.Size = size

	if e.pending != nil {
		e.pending.buffer = c.Fix(e.pending.buffer)
	}

	entered := e.entered
	e.commit(c.Fix(e.current))
	e.entered = entered

	return nil
}

// shiftAmount clamps the integer part of v to a shift count.
func shiftAmount(v decimal.Value) int {
	limit := decimal.New(int64(word.Max.Bits()))

	switch n := v.IntPart(); {
	case n.Cmp(limit) >= 0:
		return word.Max.Bits()
	case n.Cmp(limit.Neg()) <= 0:
		return -word.Max.Bits()
	default:
		return int(n.Big().Int64())
	}
}

func compute(c *Context, x decimal.Value, op BinaryOperator, y decimal.Value) (decimal.Value, error) {
	var r decimal.Value

	switch op {
	case Add:
		r = x.Add(y)
	case Subtract:
		r = x.Sub(y)
	case Multiply:
		r = x.Mul(y)
	case Divide:
		q, err := x.Div(y)
		if err != nil {
			return decimal.Zero, err
		}
		r = q
	case And:
		r = x.And(y)
	case Or:
		r = x.Or(y)
	case Xor:
		r = x.Xor(y)
	case Nor:
		r = x.Nor(y)
	case ShiftLeftBy:
		r = c.operand(x).Shift(shiftAmount(y)).Decimal(c.Signed)
	case ShiftRightBy:
		r = c.operand(x).Shift(-shiftAmount(y)).Decimal(c.Signed)
	default:
		return decimal.Zero, Error.New("unknown operator %d", op)
	}

	return c.Fix(r), nil
}
