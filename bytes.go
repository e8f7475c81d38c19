package bigint

import "github.com/calebcase/bigint/magnitude"

// Bytes returns the sign of x and the big-endian bytes of |x|. Zero is a
// single zero byte.
func (x *Int) Bytes() (Sign, []byte) {
	return x.sign, magnitude.Bytes(x.mag)
}

// BytesLE returns the sign of x and the little-endian bytes of |x|.
func (x *Int) BytesLE() (Sign, []byte) {
	return x.sign, magnitude.BytesLE(x.mag)
}

// FromBytes returns the integer with the given sign and big-endian
// magnitude bytes.
func FromBytes(sign Sign, b []byte) *Int {
	return new(Int).setNat(clampSign(sign), magnitude.FromBytes(b))
}

// FromBytesLE returns the integer with the given sign and little-endian
// magnitude bytes.
func FromBytesLE(sign Sign, b []byte) *Int {
	return new(Int).setNat(clampSign(sign), magnitude.FromBytesLE(b))
}

// U32Digits returns the sign of x and |x| as little-endian 32 bit digits.
// Zero has no digits.
func (x *Int) U32Digits() (Sign, []uint32) {
	return x.sign, magnitude.U32Digits(x.mag)
}

// FromU32Digits returns the integer with the given sign and little-endian
// 32 bit magnitude digits.
func FromU32Digits(sign Sign, ds []uint32) *Int {
	return new(Int).setNat(clampSign(sign), magnitude.FromU32Digits(ds))
}

// U64Digits returns the sign of x and |x| as little-endian 64 bit digits.
func (x *Int) U64Digits() (Sign, []uint64) {
	return x.sign, magnitude.U64Digits(x.mag)
}

// FromU64Digits returns the integer with the given sign and little-endian
// 64 bit magnitude digits.
func FromU64Digits(sign Sign, ds []uint64) *Int {
	return new(Int).setNat(clampSign(sign), magnitude.FromU64Digits(ds))
}

func clampSign(s Sign) Sign {
	switch {
	case s < Zero:
		return Negative
	case s > Zero:
		return Positive
	}

	return Zero
}

// twosComplementLE negates the little-endian bytes b in place.
func twosComplementLE(b []byte) {
	carry := true
	for i := range b {
		b[i] = ^b[i]
		if carry {
			b[i]++
			carry = b[i] == 0
		}
	}
}

// twosComplementBE negates the big-endian bytes b in place.
func twosComplementBE(b []byte) {
	carry := true
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = ^b[i]
		if carry {
			b[i]++
			carry = b[i] == 0
		}
	}
}

// needsSignByte reports whether the big-endian magnitude bytes b of a value
// with the given sign need an extra leading byte to hold the sign bit. The
// one exception is -2**(8k-1) which is exactly representable.
func needsSignByte(sign Sign, b []byte) bool {
	if b[0] <= 0x7f {
		return false
	}

	if b[0] != 0x80 || sign != Negative {
		return true
	}

	for _, v := range b[1:] {
		if v != 0 {
			return true
		}
	}

	return false
}

// SignedBytes returns the big-endian two's complement encoding of x using
// the fewest bytes. Zero is a single zero byte.
func (x *Int) SignedBytes() []byte {
	b := magnitude.Bytes(x.mag)

	if needsSignByte(x.sign, b) {
		b = append([]byte{0}, b...)
	}

	if x.sign == Negative {
		twosComplementBE(b)
	}

	return b
}

// SignedBytesLE returns the little-endian two's complement encoding of x
// using the fewest bytes.
func (x *Int) SignedBytesLE() []byte {
	b := x.SignedBytes()
	reverseBytes(b)

	return b
}

// FromSignedBytes returns the value of the big-endian two's complement
// bytes b. An empty slice is 0.
func FromSignedBytes(b []byte) *Int {
	if len(b) == 0 {
		return new(Int)
	}

	if b[0] <= 0x7f {
		return FromBytes(Positive, b)
	}

	c := make([]byte, len(b))
	copy(c, b)
	twosComplementBE(c)

	return FromBytes(Negative, c)
}

// FromSignedBytesLE returns the value of the little-endian two's complement
// bytes b.
func FromSignedBytesLE(b []byte) *Int {
	if len(b) == 0 {
		return new(Int)
	}

	if b[len(b)-1] <= 0x7f {
		return FromBytesLE(Positive, b)
	}

	c := make([]byte, len(b))
	copy(c, b)
	twosComplementLE(c)

	return FromBytesLE(Negative, c)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// MarshalBinary implements encoding.BinaryMarshaler using the big-endian two's
// complement encoding.
func (x *Int) MarshalBinary() ([]byte, error) {
	return x.SignedBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (z *Int) UnmarshalBinary(data []byte) error {
	z.Set(FromSignedBytes(data))

	return nil
}
