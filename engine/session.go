package engine

import (
	"go.uber.org/zap"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/overflow"
	"github.com/calebcase/bitcalc/settings"
)

// Snapshot captures what must survive a restart.
func (e *Engine) Snapshot(c *Context) settings.State {
	ds := e.Display(c)

	return settings.State{
		Calculator: settings.Calculator{
			LastValue:      e.current,
			LastInputText:  ds.InputText,
			LastOutputText: ds.OutputText,
			SignedMode:     c.Signed,
		},
		Word: settings.Word{
			WordSize: c.Size,
		},
		Conversion: c.Conversion,
	}
}

// Restore replaces the engine and context with a persisted state. The last
// value is wrapped into the stored register first, the same way a word size
// or sign mode change wraps it, and the state is then sanitized so a bad file
// never yields a broken session.
func (e *Engine) Restore(c *Context, s settings.State) {
	if size := s.Word.WordSize; size.Valid() {
		v := overflow.Fix(s.Calculator.LastValue, size, s.Calculator.SignedMode)
		if signedFraction(s.Calculator.LastValue, v) && s.Calculator.SignedMode {
			Logger().Warn("dropping signed fractional value", zap.Stringer("value", s.Calculator.LastValue))
			v = decimal.Zero
		}

		s.Calculator.LastValue = v
	}

	s = settings.Sanitize(s)

	*c = *NewContext(s)
	*e = Engine{current: c.Fix(s.Calculator.LastValue)}
}
