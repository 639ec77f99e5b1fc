package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number held as a big-endian magnitude and a sign.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	data := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// Big returns the signed value of the block.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Schema for an integer register.
type Schema struct {
	Bits uint64

	Signed bool
}

func (s Schema) modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(s.Bits))
}

// Pattern returns the two's complement bit pattern of b truncated to the
// schema width. Values outside the range wrap.
func (s Schema) Pattern(b Block) (*big.Int, error) {
	if s.Bits == 0 {
		return nil, Error.New("invalid schema: bits=0")
	}

	m := s.modulus()

	// Mod is Euclidean so the result is always in [0, m).
	return new(big.Int).Mod(b.Big(), m), nil
}

// Uint64 returns the pattern of b for schemas up to 64 bits wide.
func (s Schema) Uint64(b Block) (_ uint64, err error) {
	defer Error.WrapP(&err)

	if s.Bits > 64 {
		return 0, Error.New("pattern does not fit 64 bits: bits=%d", s.Bits)
	}

	p, err := s.Pattern(b)
	if err != nil {
		return 0, err
	}

	return p.Uint64(), nil
}

// FromPattern interprets the low schema bits of p as a signed or unsigned
// integer.
func (s Schema) FromPattern(p *big.Int) (_ Block, err error) {
	if s.Bits == 0 {
		return Block{}, Error.New("invalid schema: bits=0")
	}

	m := s.modulus()
	v := new(big.Int).Mod(p, m)

	if s.Signed && v.Bit(int(s.Bits)-1) == 1 {
		v.Sub(v, m)
	}

	return FromBig(v), nil
}
