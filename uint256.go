package bigint

import (
	"github.com/holiman/uint256"

	"github.com/calebcase/bigint/magnitude"
)

// FromUint256 returns u as an Int.
func FromUint256(u *uint256.Int) *Int {
	return FromBytes(Positive, u.Bytes())
}

// ToUint256 returns x as a uint256.Int. It returns a RangeError if x is
// negative or wider than 256 bits.
func (x *Int) ToUint256() (*uint256.Int, error) {
	switch {
	case x.sign == Negative:
		return nil, RangeError.New("%s is negative", x)
	case x.mag.BitLen() > 256:
		return nil, RangeError.New("%s overflows uint256", x)
	}

	return new(uint256.Int).SetBytes(magnitude.Bytes(x.mag)), nil
}

// FromSigned256 returns the value of u interpreted as a 256 bit two's
// complement number.
func FromSigned256(u *uint256.Int) *Int {
	b := u.Bytes32()

	return FromSignedBytes(b[:])
}

// ToSigned256 returns x as a 256 bit two's complement number. It returns a
// RangeError if x is outside of [-2**255, 2**255).
func (x *Int) ToSigned256() (*uint256.Int, error) {
	sb := x.SignedBytes()
	if len(sb) > 32 {
		return nil, RangeError.New("%s overflows int256", x)
	}

	var b [32]byte
	if x.sign == Negative {
		for i := range b {
			b[i] = 0xff
		}
	}
	copy(b[32-len(sb):], sb)

	return new(uint256.Int).SetBytes(b[:]), nil
}
