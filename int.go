package bigint

import (
	"hash/fnv"
	"math/big"

	"github.com/calebcase/bigint/magnitude"
)

// Int is an arbitrary precision signed integer.
type Int struct {
	sign Sign
	mag  magnitude.Nat
}

// FromParts returns the integer with the given sign and magnitude. A Zero
// sign forces the magnitude to zero and a zero magnitude forces the sign to
// Zero. The magnitude is copied.
func FromParts(sign Sign, mag magnitude.Nat) *Int {
	return new(Int).SetParts(sign, mag)
}

// SetParts sets z to the integer with the given sign and magnitude and
// returns z. The magnitude is copied.
func (z *Int) SetParts(sign Sign, mag magnitude.Nat) *Int {
	switch {
	case sign == Zero:
		return z.SetZero()
	case sign < Zero:
		sign = Negative
	default:
		sign = Positive
	}

	z.sign = sign
	z.mag = append(z.mag[:0], mag...)

	return z.normalize()
}

// FromWords returns the integer with the given sign and little-endian
// limbs. The limbs are copied.
func FromWords(sign Sign, words []big.Word) *Int {
	return new(Int).SetParts(sign, magnitude.Nat(words))
}

// setNat sets z to sign and mag taking ownership of mag.
func (z *Int) setNat(sign Sign, mag magnitude.Nat) *Int {
	z.sign = sign
	z.mag = mag

	if sign == Zero {
		z.mag = z.mag[:0]
	}

	return z.normalize()
}

// normalize restores the canonical zero after the magnitude has been
// modified.
func (z *Int) normalize() *Int {
	i := len(z.mag)
	for i > 0 && z.mag[i-1] == 0 {
		i--
	}
	z.mag = z.mag[:i]

	if i == 0 {
		z.sign = Zero
	}

	if debugInvariants {
		z.validate()
	}

	return z
}

func (x *Int) validate() {
	if !debugInvariants {
		panic("validate called but debugInvariants is not set")
	}

	switch {
	case x.sign < Negative || x.sign > Positive:
		panic(InvariantError.New("sign out of range: %d", x.sign))
	case x.sign == Zero && len(x.mag) != 0:
		panic(InvariantError.New("zero sign with magnitude of %d limbs", len(x.mag)))
	case x.sign != Zero && len(x.mag) == 0:
		panic(InvariantError.New("%s sign with zero magnitude", x.sign))
	case len(x.mag) != 0 && x.mag[len(x.mag)-1] == 0:
		panic(InvariantError.New("magnitude has leading zero limb"))
	}
}

// SetZero sets z to 0 and returns z.
func (z *Int) SetZero() *Int {
	z.sign = Zero
	z.mag = z.mag[:0]

	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.sign = x.sign
		z.mag = append(z.mag[:0], x.mag...)
	}

	return z
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	z := &Int{sign: x.sign}

	if len(x.mag) != 0 {
		z.mag = make(magnitude.Nat, len(x.mag), len(x.mag)+1)
		copy(z.mag, x.mag)
	}

	return z
}

// Sign returns the sign of x.
func (x *Int) Sign() Sign {
	return x.sign
}

// Signum returns -1, 0 or +1 with the sign of x.
func (z *Int) Signum(x *Int) *Int {
	switch x.sign {
	case Negative:
		return z.setNat(Negative, append(z.mag[:0], 1))
	case Positive:
		return z.setNat(Positive, append(z.mag[:0], 1))
	}

	return z.SetZero()
}

// Magnitude returns a copy of the magnitude of x.
func (x *Int) Magnitude() magnitude.Nat {
	return x.mag.Clone()
}

// Parts returns the sign and a copy of the magnitude of x.
func (x *Int) Parts() (Sign, magnitude.Nat) {
	return x.sign, x.Magnitude()
}

// Words returns the little-endian limbs of the magnitude of x. The result
// shares storage with x and must not be modified.
func (x *Int) Words() []big.Word {
	return x.mag
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.sign == Zero
}

// IsOne reports whether x is 1.
func (x *Int) IsOne() bool {
	return x.sign == Positive && x.mag.IsOne()
}

// IsPositive reports whether x > 0.
func (x *Int) IsPositive() bool {
	return x.sign == Positive
}

// IsNegative reports whether x < 0.
func (x *Int) IsNegative() bool {
	return x.sign == Negative
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == Negative:
		return y.mag.Cmp(x.mag)
	}

	return x.mag.Cmp(y.mag)
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x *Int) CmpAbs(y *Int) int {
	return x.mag.Cmp(y.mag)
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// Hash returns a hash of x. Equal values have equal hashes.
func (x *Int) Hash() uint64 {
	h := fnv.New64a()

	var buf [8]byte
	buf[0] = byte(x.sign)
	_, _ = h.Write(buf[:1])

	for _, w := range x.mag {
		v := uint64(w)
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}

		n := magnitude.WordBits / 8
		_, _ = h.Write(buf[:n])
	}

	return h.Sum64()
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.sign = z.sign.Neg()

	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.sign == Negative {
		z.sign = Positive
	}

	return z
}

// BitLen returns the bit length of |x|.
func (x *Int) BitLen() uint {
	return x.mag.BitLen()
}

// TrailingZeros returns the number of trailing zero bits of x. It returns
// false for 0. Negation does not change the count.
func (x *Int) TrailingZeros() (uint, bool) {
	return x.mag.TrailingZeros()
}

// Bit returns the i'th bit of the two's complement representation of x.
func (x *Int) Bit(i uint) uint {
	if x.sign != Negative {
		return x.mag.Bit(i)
	}

	// ^(|x| - 1) == -|x|
	m := magnitude.Decr(x.mag.Clone())

	return 1 ^ m.Bit(i)
}
