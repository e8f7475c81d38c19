package integer

import (
	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/magnitude"
)

// Zigzag returns the zigzag form of x: |x|<<1 with the low bit set when x is
// negative.
func Zigzag(x *bigint.Int) magnitude.Nat {
	sign, mag := x.Parts()

	z := magnitude.Shl(mag, 1)
	if sign == bigint.Negative {
		z = magnitude.Or(z, magnitude.One())
	}

	return z
}

// Unzigzag is the inverse of Zigzag. A set low bit with a zero magnitude
// decodes to 0.
func Unzigzag(z magnitude.Nat) *bigint.Int {
	sign := bigint.Positive
	if z.Bit(0) == 1 {
		sign = bigint.Negative
	}

	return bigint.FromParts(sign, magnitude.Shr(z, 1))
}

// Schema for an integer.
type Schema struct {
	// Bits bounds the width of the value. Signed schemas accept
	// [-2^(Bits-1), 2^(Bits-1)) and unsigned schemas [0, 2^Bits). Zero
	// means unbounded.
	Bits uint64

	Signed bool

	// Nullable schemas encode nil as a Null block.
	Nullable bool
}

// Check returns a bigint.RangeError if x is outside of the schema's range.
func (s Schema) Check(x *bigint.Int) error {
	sign, mag := x.Parts()

	if !s.Signed {
		switch {
		case sign == bigint.Negative:
			return bigint.RangeError.New("%s is negative (unsigned schema)", x)
		case s.Bits != 0 && uint64(mag.BitLen()) > s.Bits:
			return bigint.RangeError.New("%s overflows %d bits", x, s.Bits)
		}

		return nil
	}

	if s.Bits == 0 {
		return nil
	}

	// -2^(n-1) has the same width as 2^(n-1) - 1.
	if sign == bigint.Negative {
		mag = magnitude.Decr(mag)
	}

	if uint64(mag.BitLen()) > s.Bits-1 {
		return bigint.RangeError.New("%s overflows %d bits (signed)", x, s.Bits)
	}

	return nil
}

func (s Schema) marshal(x *bigint.Int) []byte {
	if s.Signed {
		return magnitude.Bytes(Zigzag(x))
	}

	return magnitude.Bytes(x.Magnitude())
}

func (s Schema) unmarshal(data []byte) *bigint.Int {
	n := magnitude.FromBytes(data)
	if s.Signed {
		return Unzigzag(n)
	}

	return bigint.FromParts(bigint.Positive, n)
}
