package radix

import (
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitcalc/bitvec"
	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/overflow"
)

// Parse reads text written in r for the register described by m. Fraction
// digits beyond the register fraction width are truncated. Integer digits that
// need more bits than the register has return ErrOutOfRange.
func Parse(text string, r Radix, m Mode) (_ decimal.Value, err error) {
	text = strings.NewReplacer(" ", "", "_", "").Replace(text)
	if text == "" {
		return decimal.Zero, Error.New("empty %s text", r)
	}

	if r == Decimal {
		return parseDecimal(text, m)
	}

	ip, fp, dot := strings.Cut(text, ".")
	if dot && fp == "" {
		fp = "0"
	}
	if ip == "" {
		ip = "0"
	}

	ib, err := expand(r, ip)
	if err != nil {
		return decimal.Zero, err
	}

	fb, err := expand(r, fp)
	if err != nil {
		return decimal.Zero, err
	}

	text = ib
	if fb != "" {
		text += "." + fb
	}

	vec, err := bitvec.Parse(text)
	if err != nil {
		return decimal.Zero, Error.Wrap(err)
	}

	significant := len(strings.TrimLeft(ib, "0"))
	if significant > m.Size.Bits() {
		return decimal.Zero, oops.Trace(ErrOutOfRange)
	}

	return vec.Resize(m.Size.Bits(), m.Fraction).Decimal(m.Signed), nil
}

func parseDecimal(text string, m Mode) (decimal.Value, error) {
	for _, s := range strings.TrimPrefix(text, "-") {
		if s != '.' && !ValidDigit(Decimal, s) {
			return decimal.Zero, oops.Trace(ErrInvalidDigit)
		}
	}

	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, Error.Wrap(err)
	}

	if !overflow.InRange(v, m.Size, m.Signed) {
		return decimal.Zero, oops.Trace(ErrOutOfRange)
	}

	return v, nil
}

// expand maps every digit to its bit group.
func expand(r Radix, digits string) (string, error) {
	if r == Binary {
		for _, s := range digits {
			if !ValidDigit(Binary, s) {
				return "", oops.Trace(ErrInvalidDigit)
			}
		}

		return digits, nil
	}

	sb := &strings.Builder{}
	for _, s := range digits {
		g, err := ToGroup(r, s)
		if err != nil {
			return "", err
		}
		sb.WriteString(g)
	}

	return sb.String(), nil
}
