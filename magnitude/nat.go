package magnitude

import (
	"math/big"
	"math/bits"
)

// Word is a single limb.
type Word = big.Word

// WordBits is the number of bits in a limb.
const WordBits = bits.UintSize

// Nat is an unsigned arbitrary precision number.
type Nat []Word

// Norm drops any leading zero limbs. The result shares storage with n.
func Norm(n []Word) Nat {
	i := len(n)
	for i > 0 && n[i-1] == 0 {
		i--
	}

	if i == 0 {
		return nil
	}

	return Nat(n[:i])
}

// New returns v as a Nat.
func New(v uint64) Nat {
	if v == 0 {
		return nil
	}

	if WordBits == 32 && v>>32 != 0 {
		return Nat{Word(v), Word(v >> 32)}
	}

	return Nat{Word(v)}
}

// One returns 1.
func One() Nat {
	return Nat{1}
}

// FromBig returns the magnitude of x.
func FromBig(x *big.Int) Nat {
	return Norm(x.Bits()).Clone()
}

// Big returns n as a new big.Int. The result does not share storage with n.
func (n Nat) Big() *big.Int {
	return new(big.Int).SetBits(n.Clone())
}

// view returns a big.Int that shares storage with n. It must only be used as
// a read only operand.
func (n Nat) view() *big.Int {
	return new(big.Int).SetBits(n)
}

// result converts the output of a big.Int operation back into a Nat.
func result(x *big.Int) Nat {
	return Norm(x.Bits())
}

// Clone returns a copy of n with its own storage.
func (n Nat) Clone() Nat {
	if len(n) == 0 {
		return nil
	}

	c := make(Nat, len(n), len(n)+1)
	copy(c, n)

	return c
}

// IsZero reports whether n is zero.
func (n Nat) IsZero() bool {
	return len(Norm(n)) == 0
}

// IsOne reports whether n is one.
func (n Nat) IsOne() bool {
	n = Norm(n)

	return len(n) == 1 && n[0] == 1
}

// IsEven reports whether n is even.
func (n Nat) IsEven() bool {
	return len(n) == 0 || n[0]&1 == 0
}

// Len returns the number of limbs in n.
func (n Nat) Len() int {
	return len(n)
}

// Cmp compares n and m returning -1, 0 or +1.
func (n Nat) Cmp(m Nat) int {
	n, m = Norm(n), Norm(m)

	switch {
	case len(n) < len(m):
		return -1
	case len(n) > len(m):
		return 1
	}

	for i := len(n) - 1; i >= 0; i-- {
		switch {
		case n[i] < m[i]:
			return -1
		case n[i] > m[i]:
			return 1
		}
	}

	return 0
}

// BitLen returns the number of bits required to represent n.
func (n Nat) BitLen() uint {
	n = Norm(n)
	if len(n) == 0 {
		return 0
	}

	top := len(n) - 1

	return uint(top)*WordBits + uint(bits.Len(uint(n[top])))
}

// TrailingZeros returns the number of consecutive zero bits starting from the
// least significant bit. It returns false when n is zero.
func (n Nat) TrailingZeros() (uint, bool) {
	for i, w := range n {
		if w != 0 {
			return uint(i)*WordBits + uint(bits.TrailingZeros(uint(w))), true
		}
	}

	return 0, false
}

// Bit returns the value of the i'th bit.
func (n Nat) Bit(i uint) uint {
	j := i / WordBits
	if j >= uint(len(n)) {
		return 0
	}

	return uint(n[j]>>(i%WordBits)) & 1
}

// IsUint64 reports whether n fits in a uint64.
func (n Nat) IsUint64() bool {
	return n.BitLen() <= 64
}

// Uint64 returns the low 64 bits of n.
func (n Nat) Uint64() uint64 {
	switch {
	case len(n) == 0:
		return 0
	case WordBits == 32 && len(n) > 1:
		return uint64(n[0]) | uint64(n[1])<<32
	}

	return uint64(n[0])
}

// Incr adds one to n in place. When every limb is saturated the buffer grows
// by one limb (reallocating if it has no spare capacity) so the caller must
// use the returned value.
func Incr(n Nat) Nat {
	for i := range n {
		n[i]++
		if n[i] != 0 {
			return n
		}
	}

	return append(n, 1)
}

// Decr subtracts one from n in place. It panics if n is zero.
func Decr(n Nat) Nat {
	for i := range n {
		n[i]--
		if n[i] != ^Word(0) {
			return Norm(n)
		}
	}

	panic(Error.New("decrement of zero"))
}
