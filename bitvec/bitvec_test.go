package bitvec

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/overflow"
	"github.com/calebcase/bitcalc/word"
)

func TestFromDecimal(t *testing.T) {
	type TC struct {
		value    string
		size     word.Size
		fraction int
		signed   bool
		bits     string
	}

	tcs := []TC{
		{value: "0", size: word.Byte, bits: "00000000"},
		{value: "5", size: word.Byte, bits: "00000101"},
		{value: "255", size: word.Byte, bits: "11111111"},
		{value: "256", size: word.Byte, bits: "00000000"},
		{value: "-1", size: word.Byte, signed: true, bits: "11111111"},
		{value: "-128", size: word.Byte, signed: true, bits: "10000000"},
		{value: "-1", size: word.Byte, signed: false, bits: "00000001"},
		{value: "5.3", size: word.Byte, fraction: 4, bits: "00000101.0100"},
		{value: "0.1", size: word.Byte, fraction: 8, bits: "00000000.00011001"},
		{value: "-0.5", size: word.Byte, fraction: 2, signed: true, bits: "11111111.10"},
		{value: "-2.25", size: word.Byte, fraction: 4, signed: true, bits: "11111101.1100"},
		{value: "1.5", size: word.Byte, fraction: 40, bits: "00000001.1000000000000000"},
		{value: "-1", size: word.Half, signed: true, bits: "1111111111111111"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.value), func(t *testing.T) {
			v := FromDecimal(decimal.MustParse(tc.value), tc.size, tc.fraction, tc.signed)
			require.Equal(t, tc.bits, v.String())
			require.Equal(t, tc.size.Bits(), v.Size())
		})
	}
}

func TestDecimal(t *testing.T) {
	type TC struct {
		bits   string
		signed bool
		value  string
	}

	tcs := []TC{
		{bits: "11111111", signed: false, value: "255"},
		{bits: "11111111", signed: true, value: "-1"},
		{bits: "10000000", signed: true, value: "-128"},
		{bits: "01111111", signed: true, value: "127"},
		{bits: "00000101.0100", value: "5.25"},
		{bits: "11111111.10", signed: true, value: "-0.5"},
		{bits: "11111101.1100", signed: true, value: "-2.25"},
		{bits: "0.0000000000000001", value: "0.0000152587890625"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.bits), func(t *testing.T) {
			got := MustParse(tc.bits).Decimal(tc.signed)
			require.Equal(t, tc.value, got.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "127", "128", "-128", "-129", "255", "256", "1000",
		"-1000", "65535", "-32768", "4294967295", "9223372036854775807",
		"-9223372036854775808", "18446744073709551615", "12.5", "-3.75",
		"100.0625",
	}

	for _, size := range word.Sizes {
		for _, signed := range []bool{false, true} {
			for i, s := range values {
				t.Run(fmt.Sprintf("[%d]%s/%d/%t", i, s, size, signed), func(t *testing.T) {
					want := overflow.Fix(decimal.MustParse(s), size, signed)

					// Negative fractions only exist in signed mode.
					if want.Negative() && want.HasFraction() && !signed {
						t.Skip("unsigned negative fraction")
					}

					got := FromDecimal(want, size, 4, signed).Decimal(signed)
					require.True(t, want.Equal(got), "want=%s got=%s", want, got)
				})
			}
		}
	}
}

func TestComplement(t *testing.T) {
	type TC struct {
		bits string
		c1   string
		c2   string
	}

	tcs := []TC{
		{bits: "00000000", c1: "11111111", c2: "00000000"},
		{bits: "00000001", c1: "11111110", c2: "11111111"},
		{bits: "00000101", c1: "11111010", c2: "11111011"},
		{bits: "10000000", c1: "01111111", c2: "10000000"},
		{bits: "0101.1000", c1: "1010.0111", c2: "1010.1000"},
		{bits: "1010", c1: "0101", c2: "0110"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.bits), func(t *testing.T) {
			v := MustParse(tc.bits)
			require.Equal(t, tc.c1, v.Complement1().String())
			require.Equal(t, tc.c2, v.Complement2().String())
			require.Equal(t, tc.bits, v.Complement1().Complement1().String())
			require.Equal(t, tc.bits, v.Complement2().Complement2().String())

			// v is never modified.
			require.Equal(t, tc.bits, v.String())
		})
	}
}

func TestComplementMinimumNegative(t *testing.T) {
	for _, size := range word.Sizes {
		min, _ := overflow.Range(size, true)

		v := FromDecimal(min, size, 0, true)
		c := v.Complement2()

		require.True(t, v.Equal(c), "size=%d", size)
		require.True(t, min.Equal(c.Decimal(true)), "size=%d", size)
	}
}

func TestComplementInvolution(t *testing.T) {
	for _, size := range word.Sizes {
		for _, s := range []string{"1", "-1", "42", "-42", "127", "-127"} {
			v := FromDecimal(decimal.MustParse(s), size, 0, true)
			require.True(t, v.Equal(v.Complement2().Complement2()))

			neg := v.Complement2().Decimal(true)
			require.True(t, decimal.MustParse(s).Neg().Equal(neg), "size=%d value=%s", size, s)
		}
	}
}

func TestIncrement(t *testing.T) {
	require.Equal(t, "0000", MustParse("1111").Increment().String())
	require.Equal(t, "0001.00", MustParse("0000.11").Increment().String())
	require.Equal(t, "0100", MustParse("0011").Increment().String())
}

func TestShift(t *testing.T) {
	type TC struct {
		bits string
		n    int
		want string
	}

	tcs := []TC{
		{bits: "00000101", n: 1, want: "00001010"},
		{bits: "00000101", n: -1, want: "00000010"},
		{bits: "10000001", n: 1, want: "00000010"},
		{bits: "10000001", n: -1, want: "01000000"},
		{bits: "00000101", n: 0, want: "00000101"},
		{bits: "00000101", n: 5, want: "10100000"},
		{bits: "00000101", n: 8, want: "00000000"},
		{bits: "11111111", n: 64, want: "00000000"},
		{bits: "11111111", n: -64, want: "00000000"},
		{bits: "11111111", n: 1000, want: "00000000"},
		{bits: "11111111", n: -1000, want: "00000000"},
		{bits: "00000101.1000", n: 1, want: "00000101.1000"},
		{bits: "00000101.1000", n: -3, want: "00000101.1000"},
		{bits: "00000101.1000", n: 64, want: "00000000.0000"},
		{bits: "00000101.0000", n: 2, want: "00010100.0000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s<<%d", i, tc.bits, tc.n), func(t *testing.T) {
			require.Equal(t, tc.want, MustParse(tc.bits).Shift(tc.n).String())
		})
	}

	one := MustParse("0000000000000000000000000000000000000000000000000000000000000001")
	require.True(t, one.Shift(64).IsZero())
	require.True(t, one.Shift(-64).IsZero())
	require.False(t, one.Shift(63).IsZero())
	require.True(t, one.Shift(63).Bit(63))
}

func TestBitwise(t *testing.T) {
	type TC struct {
		name string
		fn   func(a, b Vector) Vector
		a, b string
		want string
		mark error
	}

	tcs := []TC{
		{name: "and", fn: And, a: "1010", b: "0110", want: "0010", mark: oops.New("unexpected")},
		{name: "or", fn: Or, a: "1010", b: "0110", want: "1110", mark: oops.New("unexpected")},
		{name: "xor", fn: Xor, a: "1010", b: "0110", want: "1100", mark: oops.New("unexpected")},
		{name: "nor", fn: Nor, a: "1010", b: "0110", want: "0001", mark: oops.New("unexpected")},
		{name: "and padded", fn: And, a: "1111", b: "10", want: "0010", mark: oops.New("unexpected")},
		{name: "or padded", fn: Or, a: "1", b: "1000", want: "1001", mark: oops.New("unexpected")},
		{name: "nor padded", fn: Nor, a: "01", b: "0100", want: "1010", mark: oops.New("unexpected")},
		{name: "xor fraction", fn: Xor, a: "1.1", b: "1.01", want: "0.11", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, tc.fn(MustParse(tc.a), MustParse(tc.b)).String(), tc.mark)
		})
	}
}

func TestBits(t *testing.T) {
	v := New(8, 4)
	require.True(t, v.IsZero())

	v, err := v.SetBit(0, true)
	require.NoError(t, err)
	v, err = v.SetBit(7, true)
	require.NoError(t, err)
	v, err = v.SetFracBit(0, true)
	require.NoError(t, err)

	require.Equal(t, "10000001.1000", v.String())
	require.True(t, v.Bit(7))
	require.False(t, v.Bit(6))
	require.False(t, v.Bit(8))
	require.True(t, v.FracBit(0))
	require.False(t, v.FracBit(4))
	require.True(t, v.HasFraction())
	require.Len(t, v.Integer(), 8)
	require.Len(t, v.Fraction(), 4)

	_, err = v.SetBit(8, true)
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = v.SetFracBit(-1, true)
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	type TC struct {
		input string
		want  string
		err   bool
	}

	tcs := []TC{
		{input: "1111 1111", want: "11111111"},
		{input: "0b_1", err: true},
		{input: "10_01.1", want: "1001.1"},
		{input: ".01", want: ".01"},
		{input: "", err: true},
		{input: "1.", err: true},
		{input: "102", err: true},
		{input: "1.2", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			v, err := Parse(tc.input)
			if tc.err {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, v.String())
		})
	}
}

func TestResize(t *testing.T) {
	v := MustParse("1101.1")
	require.Equal(t, "00001101.1000", v.Resize(8, 4).String())
	require.Equal(t, "01", v.Resize(2, 0).String())
}
