// Package word describes the fixed register widths a value is held in.
package word

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("word")

// Size is the number of integer bits in the register.
type Size uint8

// Supported sizes.
const (
	Byte  Size = 8
	Half  Size = 16
	Word  Size = 32
	Quad  Size = 64
	Max        = Quad
	Empty Size = 0
)

// Default is used when no size has been configured.
const Default = Word

// Sizes lists every supported size in ascending order.
var Sizes = []Size{Byte, Half, Word, Quad}

// Parse returns the size for the given bit count.
func Parse(s string) (Size, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return Empty, Error.New("invalid size %q", s)
	}

	size := Size(n)
	if !size.Valid() {
		return Empty, Error.New("unsupported size %d", n)
	}

	return size, nil
}

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	switch s {
	case Byte, Half, Word, Quad:
		return true
	}

	return false
}

// Bits returns the width as an int.
func (s Size) Bits() int {
	return int(s)
}

// Modulus returns 2^s.
func (s Size) Modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(s))
}

// Bounds returns the inclusive range of values representable with s bits.
func (s Size) Bounds(signed bool) (min, max *big.Int) {
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), uint(s)-1)

		min = new(big.Int).Neg(half)
		max = half.Sub(half, big.NewInt(1))

		return min, max
	}

	max = s.Modulus()
	max.Sub(max, big.NewInt(1))

	return new(big.Int), max
}

func (s Size) String() string {
	return strconv.Itoa(int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) (err error) {
	*s, err = Parse(string(text))

	return err
}
