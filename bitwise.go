package bigint

import (
	"math/bits"

	"github.com/calebcase/bigint/magnitude"
)

type word = magnitude.Word

// negateCarry returns the two's complement of limb a given the carry from
// the limbs below it and updates the carry. The carry starts at 1.
//
//	   ff -> ...f    01
//	01 00 -> ...f ff 00
//	01 01 -> ...f fe ff
//	ff ff -> ...f 00 01
func negateCarry(a word, carry *word) word {
	lo, c := bits.Add(uint(^a), uint(*carry), 0)
	*carry = word(c)

	return word(lo)
}

// The helpers below combine the limbs of a (modified in place) with the limbs
// of b treating a negative operand as its infinite two's complement. Negative
// results are converted back to a magnitude with a second carry chain. The
// result may have leading zero limbs and must be normalized.

// +1 & -ff = ...0 01 & ...f 01 = ...0 01 = +1
// +ff & -1 = ...0 ff & ...f ff = ...0 ff = +ff
// The result is positive with the length of a.
func bitandPosNeg(a, b []word) []word {
	carryB := word(1)

	for i := 0; i < len(a) && i < len(b); i++ {
		twosB := negateCarry(b[i], &carryB)
		a[i] &= twosB
	}

	return a
}

// -1 & +ff = ...f ff & ...0 ff = ...0 ff = +ff
// -ff & +1 = ...f 01 & ...0 01 = ...0 01 = +1
// The result is positive with the length of b.
func bitandNegPos(a, b []word) []word {
	carryA := word(1)

	for i := 0; i < len(a) && i < len(b); i++ {
		twosA := negateCarry(a[i], &carryA)
		a[i] = twosA & b[i]
	}

	switch {
	case len(a) > len(b):
		a = a[:len(b)]
	case len(a) < len(b):
		a = append(a, b[len(a):]...)
	}

	return a
}

// -1 & -ff = ...f ff & ...f 01 = ...f 01 = -ff
// -ff & -fe = ...f 01 & ...f 02 = ...f 00 = -100
// The result is negative with the length of the longest operand plus a
// possible carry limb.
func bitandNegNeg(a, b []word) []word {
	carryA, carryB, carryAnd := word(1), word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosA := negateCarry(a[i], &carryA)
		twosB := negateCarry(b[i], &carryB)
		a[i] = negateCarry(twosA&twosB, &carryAnd)
	}

	switch {
	case len(a) > len(b):
		for i := n; i < len(a); i++ {
			twosA := negateCarry(a[i], &carryA)
			a[i] = negateCarry(twosA, &carryAnd)
		}
	case len(a) < len(b):
		for _, bi := range b[n:] {
			twosB := negateCarry(bi, &carryB)
			a = append(a, negateCarry(twosB, &carryAnd))
		}
	}

	if carryAnd != 0 {
		a = append(a, 1)
	}

	return a
}

// +1 | -ff = ...0 01 | ...f 01 = ...f 01 = -ff
// +ff | -1 = ...0 ff | ...f ff = ...f ff = -1
// The result is negative with the length of b.
func bitorPosNeg(a, b []word) []word {
	carryB, carryOr := word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosB := negateCarry(b[i], &carryB)
		a[i] = negateCarry(a[i]|twosB, &carryOr)
	}

	switch {
	case len(a) > len(b):
		a = a[:len(b)]
	case len(a) < len(b):
		for _, bi := range b[n:] {
			twosB := negateCarry(bi, &carryB)
			a = append(a, negateCarry(twosB, &carryOr))
		}
	}

	if debugInvariants && carryOr != 0 {
		panic(InvariantError.New("bitor pos/neg carry escaped"))
	}

	return a
}

// -1 | +ff = ...f ff | ...0 ff = ...f ff = -1
// -ff | +1 = ...f 01 | ...0 01 = ...f 01 = -ff
// The result is negative with the length of a.
func bitorNegPos(a, b []word) []word {
	carryA, carryOr := word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosA := negateCarry(a[i], &carryA)
		a[i] = negateCarry(twosA|b[i], &carryOr)
	}

	for i := n; i < len(a); i++ {
		twosA := negateCarry(a[i], &carryA)
		a[i] = negateCarry(twosA, &carryOr)
	}

	if debugInvariants && carryOr != 0 {
		panic(InvariantError.New("bitor neg/pos carry escaped"))
	}

	return a
}

// -1 | -ff = ...f ff | ...f 01 = ...f ff = -1
// -ff | -1 = ...f 01 | ...f ff = ...f ff = -1
// The result is negative with the length of the shortest operand.
func bitorNegNeg(a, b []word) []word {
	carryA, carryB, carryOr := word(1), word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosA := negateCarry(a[i], &carryA)
		twosB := negateCarry(b[i], &carryB)
		a[i] = negateCarry(twosA|twosB, &carryOr)
	}

	if debugInvariants && carryOr != 0 {
		panic(InvariantError.New("bitor neg/neg carry escaped"))
	}

	return a[:n]
}

// +1 ^ -ff = ...0 01 ^ ...f 01 = ...f 00 = -100
// +ff ^ -1 = ...0 ff ^ ...f ff = ...f 00 = -100
// The result is negative with the length of the longest operand plus a
// possible carry limb.
func bitxorPosNeg(a, b []word) []word {
	carryB, carryXor := word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosB := negateCarry(b[i], &carryB)
		a[i] = negateCarry(a[i]^twosB, &carryXor)
	}

	switch {
	case len(a) > len(b):
		for i := n; i < len(a); i++ {
			a[i] = negateCarry(^a[i], &carryXor)
		}
	case len(a) < len(b):
		for _, bi := range b[n:] {
			twosB := negateCarry(bi, &carryB)
			a = append(a, negateCarry(twosB, &carryXor))
		}
	}

	if carryXor != 0 {
		a = append(a, 1)
	}

	return a
}

// -1 ^ +ff = ...f ff ^ ...0 ff = ...f 00 = -100
// -ff ^ +1 = ...f 01 ^ ...0 01 = ...f 00 = -100
// The result is negative with the length of the longest operand plus a
// possible carry limb.
func bitxorNegPos(a, b []word) []word {
	carryA, carryXor := word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosA := negateCarry(a[i], &carryA)
		a[i] = negateCarry(twosA^b[i], &carryXor)
	}

	switch {
	case len(a) > len(b):
		for i := n; i < len(a); i++ {
			twosA := negateCarry(a[i], &carryA)
			a[i] = negateCarry(twosA, &carryXor)
		}
	case len(a) < len(b):
		for _, bi := range b[n:] {
			a = append(a, negateCarry(^bi, &carryXor))
		}
	}

	if carryXor != 0 {
		a = append(a, 1)
	}

	return a
}

// -1 ^ -ff = ...f ff ^ ...f 01 = ...0 fe = +fe
// -ff ^ -1 = ...f 01 ^ ...f ff = ...0 fe = +fe
// The result is positive with the length of the longest operand.
func bitxorNegNeg(a, b []word) []word {
	carryA, carryB := word(1), word(1)

	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		twosA := negateCarry(a[i], &carryA)
		twosB := negateCarry(b[i], &carryB)
		a[i] = twosA ^ twosB
	}

	switch {
	case len(a) > len(b):
		for i := n; i < len(a); i++ {
			twosA := negateCarry(a[i], &carryA)
			a[i] = ^twosA
		}
	case len(a) < len(b):
		for _, bi := range b[n:] {
			twosB := negateCarry(bi, &carryB)
			a = append(a, ^twosB)
		}
	}

	return a
}

// mutable gives z its own copy of the limbs of x so they can be modified. It
// is a no-op when z is x.
func (z *Int) mutable(x *Int) {
	if z == x {
		return
	}

	z.sign = x.sign
	z.mag = append(z.mag[:0], x.mag...)
}

func (z *Int) andAssign(y *Int) *Int {
	switch {
	case z.sign == Zero:
	case y.sign == Zero:
		z.SetZero()
	case z.sign == Positive && y.sign == Positive:
		z.mag = magnitude.And(z.mag, y.mag)
	case z.sign == Positive:
		z.mag = bitandPosNeg(z.mag, y.mag)
	case y.sign == Positive:
		z.mag = bitandNegPos(z.mag, y.mag)
		z.sign = Positive
	default:
		z.mag = bitandNegNeg(z.mag, y.mag)
	}

	return z.normalize()
}

func (z *Int) orAssign(y *Int) *Int {
	switch {
	case y.sign == Zero:
	case z.sign == Zero:
		z.Set(y)
	case z.sign == Positive && y.sign == Positive:
		z.mag = magnitude.Or(z.mag, y.mag)
	case z.sign == Positive:
		z.mag = bitorPosNeg(z.mag, y.mag)
		z.sign = Negative
	case y.sign == Positive:
		z.mag = bitorNegPos(z.mag, y.mag)
	default:
		z.mag = bitorNegNeg(z.mag, y.mag)
	}

	return z.normalize()
}

func (z *Int) xorAssign(y *Int) *Int {
	switch {
	case y.sign == Zero:
	case z.sign == Zero:
		z.Set(y)
	case z.sign == Positive && y.sign == Positive:
		z.mag = magnitude.Xor(z.mag, y.mag)
	case z.sign == Positive:
		z.mag = bitxorPosNeg(z.mag, y.mag)
		z.sign = Negative
	case y.sign == Positive:
		z.mag = bitxorNegPos(z.mag, y.mag)
	default:
		z.mag = bitxorNegNeg(z.mag, y.mag)
		z.sign = Positive
	}

	return z.normalize()
}

// And sets z to x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	switch {
	case x == y:
		return z.Set(x)
	case z == y:
		x, y = y, x
	case z != x:
		// Copy the operand whose length bounds the result: the positive
		// one, or the longer of two negatives.
		if x.sign == Negative && (y.sign == Positive || len(x.mag) < len(y.mag)) {
			x, y = y, x
		}
	}

	z.mutable(x)

	return z.andAssign(y)
}

// Or sets z to x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	switch {
	case x == y:
		return z.Set(x)
	case z == y:
		x, y = y, x
	case z != x:
		// Copy the negative operand, or the shorter of two negatives.
		if x.sign != Negative && y.sign == Negative ||
			x.sign == Negative && y.sign == Negative && len(x.mag) > len(y.mag) {
			x, y = y, x
		}
	}

	z.mutable(x)

	return z.orAssign(y)
}

// Xor sets z to x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	switch {
	case x == y:
		return z.SetZero()
	case z == y:
		x, y = y, x
	case z != x:
		if len(x.mag) < len(y.mag) {
			x, y = y, x
		}
	}

	z.mutable(x)

	return z.xorAssign(y)
}

// Not sets z to ^x (-x - 1) and returns z.
//
//	^-2 = ^...f fe = ...0 01 = +1
//	^-1 = ^...f ff = ...0 00 =  0
//	^ 0 = ^...0 00 = ...f ff = -1
//	^+1 = ^...0 01 = ...f fe = -2
func (z *Int) Not(x *Int) *Int {
	z.mutable(x)

	switch z.sign {
	case Negative:
		z.mag = magnitude.Decr(z.mag)
		z.sign = Positive
	default:
		z.mag = magnitude.Incr(z.mag)
		z.sign = Negative
	}

	return z.normalize()
}

// AndNot sets z to x & ^y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	return z.And(x, new(Int).Not(y))
}
