package engine

import (
	"strconv"
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitcalc/word"
)

// Event is something the user did.
type Event interface {
	isEvent()
}

// Digit appends a symbol of the input radix to the value being typed.
type Digit struct {
	Symbol rune
}

// Dot starts the fraction of the value being typed.
type Dot struct{}

// Clear resets the value to zero and drops the pending operation.
type Clear struct{}

// Negate replaces the value by its negation.
type Negate struct{}

// Binary presses a binary operator.
type Binary struct {
	Op BinaryOperator
}

// Unary applies a unary operator to the value.
type Unary struct {
	Op UnaryOperator
}

// Complement applies a complement operator to the value.
type Complement struct {
	Op ComplementOperator
}

// Equals completes the pending operation.
type Equals struct{}

// BitToggle sets one bit of the value. Index 0 is the least significant
// integer bit, or the first bit after the point when Fraction is set.
type BitToggle struct {
	Index    int
	Fraction bool
	Value    bool
}

// SignModeToggled switches between signed and unsigned interpretation.
type SignModeToggled struct{}

// WordSizeChanged selects a new register width.
type WordSizeChanged struct {
	Size word.Size
}

func (Digit) isEvent()           {}
func (Dot) isEvent()             {}
func (Clear) isEvent()           {}
func (Negate) isEvent()          {}
func (Binary) isEvent()          {}
func (Unary) isEvent()           {}
func (Complement) isEvent()      {}
func (Equals) isEvent()          {}
func (BitToggle) isEvent()       {}
func (SignModeToggled) isEvent() {}
func (WordSizeChanged) isEvent() {}

var keywords = map[string]Event{
	"=":      Equals{},
	".":      Dot{},
	"clear":  Clear{},
	"CLR":    Clear{},
	"+/-":    Negate{},
	"±":      Negate{},
	"neg":    Negate{},
	"signed": SignModeToggled{},
	"*":      Binary{Op: Multiply},
	"/":      Binary{Op: Divide},
}

// Parse turns a script token into events. Tokens are button labels, the
// keywords "=", ".", "clear", "+/-", "signed", "size:<bits>", "bit:<i>=<0|1>",
// "frac:<i>=<0|1>", or a run of digits which yields one Digit per symbol.
func Parse(tok string) ([]Event, error) {
	if ev, ok := Lookup(tok); ok {
		return []Event{ev}, nil
	}

	if ev, ok := keywords[tok]; ok {
		return []Event{ev}, nil
	}

	if name, arg, ok := strings.Cut(tok, ":"); ok {
		ev, err := parseArg(name, arg)
		if err != nil {
			return nil, err
		}

		return []Event{ev}, nil
	}

	var evs []Event
	for _, r := range tok {
		if !isSymbol(r) {
			return nil, Error.New("unknown token %q", tok)
		}
		evs = append(evs, Digit{Symbol: r})
	}

	if len(evs) == 0 {
		return nil, Error.New("empty token")
	}

	return evs, nil
}

func parseArg(name, arg string) (Event, error) {
	switch name {
	case "size":
		size, err := word.Parse(arg)
		if err != nil {
			return nil, oops.Trace(err)
		}

		return WordSizeChanged{Size: size}, nil
	case "bit", "frac":
		is, vs, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, Error.New("invalid %s token %q", name, arg)
		}

		index, err := strconv.Atoi(is)
		if err != nil {
			return nil, Error.New("invalid %s index %q", name, is)
		}

		var value bool
		switch vs {
		case "0":
		case "1":
			value = true
		default:
			return nil, Error.New("invalid %s value %q", name, vs)
		}

		return BitToggle{Index: index, Fraction: name == "frac", Value: value}, nil
	}

	return nil, Error.New("unknown token %s:%s", name, arg)
}

func isSymbol(r rune) bool {
	return ('0' <= r && r <= '9') || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}
