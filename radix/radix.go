// Package radix renders values as binary, octal, decimal or hexadecimal text
// and reads them back.
//
// Binary, octal and hexadecimal text is a view of the bit vector of a value,
// so the register size and sign mode decide what the digits mean: "FF" is 255
// in an unsigned 8-bit register and -1 in a signed one. Decimal text is the
// value itself.
package radix

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/bitcalc/word"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("radix")

var (
	// ErrInvalidDigit is returned for a symbol outside the radix alphabet.
	ErrInvalidDigit = Error.New("invalid digit")

	// ErrOutOfRange is returned when text needs more integer bits than the
	// register has.
	ErrOutOfRange = Error.New("out of range")
)

// Radix is a numeral system. Its value is the base.
type Radix int

// Supported numeral systems.
const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Radixes lists the supported numeral systems.
var Radixes = []Radix{Binary, Octal, Decimal, Hexadecimal}

var names = map[Radix]string{
	Binary:      "binary",
	Octal:       "octal",
	Decimal:     "decimal",
	Hexadecimal: "hexadecimal",
}

// Lookup returns the radix for a name ("hex", "hexadecimal") or base ("16").
func Lookup(s string) (Radix, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "bin":
		return Binary, nil
	case "oct":
		return Octal, nil
	case "dec":
		return Decimal, nil
	case "hex":
		return Hexadecimal, nil
	}

	for r, name := range names {
		if s == name {
			return r, nil
		}
	}

	base, err := strconv.Atoi(s)
	if err == nil && Radix(base).Valid() {
		return Radix(base), nil
	}

	return 0, Error.New("unknown radix %q", s)
}

// Valid reports whether r is a supported numeral system.
func (r Radix) Valid() bool {
	_, ok := names[r]

	return ok
}

// GroupBits returns the number of bits one digit stands for. Decimal digits
// do not map to bit groups and return 0.
func (r Radix) GroupBits() int {
	switch r {
	case Binary:
		return 1
	case Octal:
		return 3
	case Hexadecimal:
		return 4
	}

	return 0
}

func (r Radix) String() string {
	if name, ok := names[r]; ok {
		return name
	}

	return "radix(" + strconv.Itoa(int(r)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (r Radix) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, Error.New("unknown radix %d", int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Radix) UnmarshalText(text []byte) (err error) {
	*r, err = Lookup(string(text))

	return err
}

var octalGroups = [8]string{
	"000", "001", "010", "011", "100", "101", "110", "111",
}

var hexGroups = [16]string{
	"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
}

const symbols = "0123456789ABCDEF"

func groups(r Radix) []string {
	switch r {
	case Octal:
		return octalGroups[:]
	case Hexadecimal:
		return hexGroups[:]
	}

	return nil
}

// ValidDigit reports whether symbol belongs to the alphabet of r.
func ValidDigit(r Radix, symbol rune) bool {
	i := strings.IndexRune(symbols, unicode.ToUpper(symbol))

	return i >= 0 && i < int(r) && r.Valid()
}

// ToGroup returns the bits an octal or hexadecimal symbol stands for, most
// significant first.
func ToGroup(r Radix, symbol rune) (string, error) {
	gs := groups(r)
	if gs == nil || !ValidDigit(r, symbol) {
		return "", oops.Trace(ErrInvalidDigit)
	}

	return gs[strings.IndexRune(symbols, unicode.ToUpper(symbol))], nil
}

// FromGroup returns the octal or hexadecimal symbol for a bit group.
func FromGroup(r Radix, group string) (rune, error) {
	for i, g := range groups(r) {
		if g == group {
			return rune(symbols[i]), nil
		}
	}

	return 0, Error.New("invalid %s group %q", r, group)
}

// Mode is the register the text is read from or written for.
type Mode struct {
	Size     word.Size
	Signed   bool
	Fraction int
}
