package bigint

import "github.com/calebcase/bigint/magnitude"

// Sqrt sets z to floor(sqrt(x)) and returns z. It panics with a DomainError
// if x is negative.
func (z *Int) Sqrt(x *Int) *Int {
	if x.sign == Negative {
		panic(DomainError.New("square root of negative number %s", x))
	}

	return z.setNat(x.sign, magnitude.Sqrt(x.mag))
}

// Cbrt sets z to the cube root of x truncated toward zero and returns z.
func (z *Int) Cbrt(x *Int) *Int {
	return z.setNat(x.sign, magnitude.Cbrt(x.mag))
}

// NthRoot sets z to the n'th root of x truncated toward zero and returns z.
// It panics with a DomainError if n is 0 or if n is even and x is negative.
func (z *Int) NthRoot(x *Int, n uint) *Int {
	switch {
	case n == 0:
		panic(DomainError.New("zeroth root"))
	case x.sign == Negative && n%2 == 0:
		panic(DomainError.New("even root (%d) of negative number %s", n, x))
	}

	return z.setNat(x.sign, magnitude.Root(x.mag, n))
}
