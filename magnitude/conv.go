package magnitude

import (
	"math/big"
	"strings"
)

// Bytes returns the big-endian bytes of n. Zero is encoded as a single zero
// byte.
func Bytes(n Nat) []byte {
	if n.IsZero() {
		return []byte{0}
	}

	return n.view().Bytes()
}

// BytesLE returns the little-endian bytes of n.
func BytesLE(n Nat) []byte {
	b := Bytes(n)
	reverse(b)

	return b
}

// FromBytes returns the value of the big-endian bytes b.
func FromBytes(b []byte) Nat {
	return result(new(big.Int).SetBytes(b))
}

// FromBytesLE returns the value of the little-endian bytes b.
func FromBytesLE(b []byte) Nat {
	c := make([]byte, len(b))
	copy(c, b)
	reverse(c)

	return FromBytes(c)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// U32Digits returns n as little-endian 32 bit digits. Zero has no digits.
func U32Digits(n Nat) []uint32 {
	n = Norm(n)
	ds := make([]uint32, 0, len(n)*WordBits/32)

	for _, w := range n {
		for i := 0; i < WordBits; i += 32 {
			ds = append(ds, uint32(uint64(w)>>i))
		}
	}

	for len(ds) > 0 && ds[len(ds)-1] == 0 {
		ds = ds[:len(ds)-1]
	}

	return ds
}

// FromU32Digits returns the value of the little-endian 32 bit digits ds.
func FromU32Digits(ds []uint32) Nat {
	per := WordBits / 32
	n := make(Nat, (len(ds)+per-1)/per)

	for i, d := range ds {
		n[i/per] |= Word(uint64(d) << (32 * (i % per)))
	}

	return Norm(n)
}

// U64Digits returns n as little-endian 64 bit digits. Zero has no digits.
func U64Digits(n Nat) []uint64 {
	ds32 := U32Digits(n)
	ds := make([]uint64, (len(ds32)+1)/2)

	for i, d := range ds32 {
		ds[i/2] |= uint64(d) << (32 * (i % 2))
	}

	return ds
}

// FromU64Digits returns the value of the little-endian 64 bit digits ds.
func FromU64Digits(ds []uint64) Nat {
	ds32 := make([]uint32, 0, len(ds)*2)
	for _, d := range ds {
		ds32 = append(ds32, uint32(d), uint32(d>>32))
	}

	return FromU32Digits(ds32)
}

// chunk returns the largest power of radix that fits in a uint32 and its
// exponent.
func chunk(radix uint32) (base uint64, digits int) {
	base = uint64(radix)
	digits = 1

	for base*uint64(radix) <= 1<<32 {
		base *= uint64(radix)
		digits++
	}

	return base, digits
}

// RadixLE returns the little-endian digits of n in the given radix. Zero is
// encoded as a single zero digit. It panics if radix is not in [2, 256].
func RadixLE(n Nat, radix uint32) []byte {
	if radix < 2 || radix > 256 {
		panic(Error.New("radix out of range: %d", radix))
	}

	if n.IsZero() {
		return []byte{0}
	}

	base, digits := chunk(radix)
	bb := new(big.Int).SetUint64(base)

	q := n.Big()
	r := new(big.Int)
	ds := make([]byte, 0, int(n.BitLen())/bitsPerDigit(radix)+1)

	for q.Sign() != 0 {
		q.QuoRem(q, bb, r)
		w := r.Uint64()

		if q.Sign() == 0 {
			for w != 0 {
				ds = append(ds, byte(w%uint64(radix)))
				w /= uint64(radix)
			}

			break
		}

		for i := 0; i < digits; i++ {
			ds = append(ds, byte(w%uint64(radix)))
			w /= uint64(radix)
		}
	}

	return ds
}

// Radix returns the big-endian digits of n in the given radix.
func Radix(n Nat, radix uint32) []byte {
	ds := RadixLE(n, radix)
	reverse(ds)

	return ds
}

func bitsPerDigit(radix uint32) int {
	b := 1
	for 1<<(b+1) <= radix {
		b++
	}

	return b
}

// FromRadix returns the value of the big-endian digits ds in the given
// radix. An empty digit sequence is zero.
func FromRadix(ds []byte, radix uint32) (Nat, error) {
	if radix < 2 || radix > 256 {
		return nil, Error.New("radix out of range: %d", radix)
	}

	n := new(big.Int)
	rb := new(big.Int).SetUint64(uint64(radix))
	d := new(big.Int)

	for i, digit := range ds {
		if uint32(digit) >= radix {
			return nil, Error.New("invalid digit at %d: %d >= %d", i, digit, radix)
		}

		n.Mul(n, rb)
		n.Add(n, d.SetUint64(uint64(digit)))
	}

	return result(n), nil
}

// FromRadixLE returns the value of the little-endian digits ds in the given
// radix.
func FromRadixLE(ds []byte, radix uint32) (Nat, error) {
	c := make([]byte, len(ds))
	copy(c, ds)
	reverse(c)

	return FromRadix(c, radix)
}

// Text returns n formatted in the given radix using lower case letters for
// digits above 9. It panics if radix is not in [2, 36].
func Text(n Nat, radix int) string {
	if radix < 2 || radix > 36 {
		panic(Error.New("radix out of range: %d", radix))
	}

	return n.view().Text(radix)
}

func digitValue(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'z':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return uint32(c-'A') + 10, true
	}

	return 0, false
}

// Parse returns the value of s in the given radix. An optional leading '+'
// is accepted. Underscores may separate digits but may not lead.
func Parse(s string, radix int) (Nat, error) {
	if radix < 2 || radix > 36 {
		return nil, Error.New("radix out of range: %d", radix)
	}

	s = strings.TrimPrefix(s, "+")

	if strings.HasPrefix(s, "_") {
		return nil, Error.New("invalid digit: leading underscore")
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}

		v, ok := digitValue(c)
		if !ok || v >= uint32(radix) {
			return nil, Error.New("invalid digit %q at %d for radix %d", c, i, radix)
		}

		sb.WriteByte(c)
	}

	if sb.Len() == 0 {
		return nil, Error.New("cannot parse integer from empty string")
	}

	n, ok := new(big.Int).SetString(sb.String(), radix)
	if !ok {
		return nil, Error.New("invalid integer %q for radix %d", s, radix)
	}

	return result(n), nil
}
