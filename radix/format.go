package radix

import (
	"strings"

	"github.com/calebcase/bitcalc/bitvec"
	"github.com/calebcase/bitcalc/decimal"
)

// Format renders v in r for the register described by m.
func Format(v decimal.Value, r Radix, m Mode) string {
	if r == Decimal {
		return v.String()
	}

	vec := bitvec.FromDecimal(v, m.Size, m.Fraction, m.Signed)

	bits := vec.String()
	ip, fp, _ := strings.Cut(bits, ".")
	fp = strings.TrimRight(fp, "0")

	var out string
	if r == Binary {
		out = nibbles(ip)
	} else {
		out = strings.TrimLeft(encode(r, padLeft(ip, r.GroupBits())), "0")
		if out == "" {
			out = "0"
		}
	}

	if fp == "" {
		return out
	}

	if r == Binary {
		return out + "." + fp
	}

	return out + "." + encode(r, padRight(fp, r.GroupBits()))
}

// nibbles splits an integer bit string into space separated groups of four,
// dropping leading all zero groups but keeping at least one.
func nibbles(bits string) string {
	bits = padLeft(bits, 4)

	var out []string
	for i := 0; i < len(bits); i += 4 {
		g := bits[i : i+4]
		if len(out) == 0 && g == "0000" && i+4 < len(bits) {
			continue
		}
		out = append(out, g)
	}

	if len(out) == 0 {
		return "0000"
	}

	return strings.Join(out, " ")
}

func encode(r Radix, bits string) string {
	n := r.GroupBits()
	sb := &strings.Builder{}

	for i := 0; i+n <= len(bits); i += n {
		// Groups are always well formed here.
		s, _ := FromGroup(r, bits[i:i+n])
		sb.WriteRune(s)
	}

	return sb.String()
}

func padLeft(bits string, n int) string {
	if rem := len(bits) % n; rem != 0 {
		return strings.Repeat("0", n-rem) + bits
	}

	return bits
}

func padRight(bits string, n int) string {
	if rem := len(bits) % n; rem != 0 {
		return bits + strings.Repeat("0", n-rem)
	}

	return bits
}
