package bigint

import "github.com/calebcase/bigint/magnitude"

// subMag sets z to sign*(a - b) where a and b are magnitudes.
func (z *Int) subMag(sign Sign, a, b magnitude.Nat) *Int {
	switch a.Cmp(b) {
	case 0:
		return z.SetZero()
	case 1:
		return z.setNat(sign, magnitude.Sub(a, b))
	}

	return z.setNat(sign.Neg(), magnitude.Sub(b, a))
}

// Add sets z to x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	switch {
	case y.sign == Zero:
		return z.Set(x)
	case x.sign == Zero:
		return z.Set(y)
	case x.sign == y.sign:
		return z.setNat(x.sign, magnitude.Add(x.mag, y.mag))
	}

	// Opposite signs: the larger magnitude wins.
	return z.subMag(x.sign, x.mag, y.mag)
}

// Sub sets z to x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	switch {
	case y.sign == Zero:
		return z.Set(x)
	case x.sign == Zero:
		return z.Neg(y)
	case x.sign == y.sign:
		return z.subMag(x.sign, x.mag, y.mag)
	}

	return z.setNat(x.sign, magnitude.Add(x.mag, y.mag))
}

// Mul sets z to x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	sign := x.sign.Mul(y.sign)
	if sign == Zero {
		return z.SetZero()
	}

	return z.setNat(sign, magnitude.Mul(x.mag, y.mag))
}

// Quo sets z to the quotient x / y truncated toward zero and returns z. It
// panics with a DomainError if y is 0.
func (z *Int) Quo(x, y *Int) *Int {
	z.DivRem(x, y, new(Int))

	return z
}

// Rem sets z to the remainder of x / y truncated toward zero and returns z.
// The remainder has the sign of x. It panics with a DomainError if y is 0.
func (z *Int) Rem(x, y *Int) *Int {
	new(Int).DivRem(x, y, z)

	return z
}

// Pow sets z to x ** e and returns z. x ** 0 is 1 for every x.
func (z *Int) Pow(x *Int, e uint64) *Int {
	sign := x.sign
	switch {
	case e == 0:
		sign = Positive
	case sign == Negative && e%2 == 0:
		sign = Positive
	}

	return z.setNat(sign, magnitude.Pow(x.mag, e))
}

// AbsSub sets z to x - y if x > y and to 0 otherwise. It returns z.
func (z *Int) AbsSub(x, y *Int) *Int {
	if x.Cmp(y) <= 0 {
		return z.SetZero()
	}

	return z.Sub(x, y)
}

// Sum returns the sum of xs. The sum of nothing is 0.
func Sum(xs ...*Int) *Int {
	z := new(Int)
	for _, x := range xs {
		z.Add(z, x)
	}

	return z
}

// Product returns the product of xs. The product of nothing is 1.
func Product(xs ...*Int) *Int {
	z := NewInt(1)
	for _, x := range xs {
		z.Mul(z, x)
	}

	return z
}
