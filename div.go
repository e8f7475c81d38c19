package bigint

import "github.com/calebcase/bigint/magnitude"

func checkDivisor(y *Int) {
	if y.sign == Zero {
		panic(DomainError.New("division by zero"))
	}
}

// DivRem sets z to the quotient and r to the remainder of x / y truncated
// toward zero and returns (z, r). The remainder has the sign of x. z and r
// must be distinct. It panics with a DomainError if y is 0.
func (z *Int) DivRem(x, y, r *Int) (*Int, *Int) {
	checkDivisor(y)

	if z == r {
		panic(Error.New("DivRem: quotient and remainder alias"))
	}

	xs, ys := x.sign, y.sign
	q, m := magnitude.DivRem(x.mag, y.mag)

	z.setNat(xs.Mul(ys), q)
	r.setNat(xs, m)

	return z, r
}

// CheckedDivRem is DivRem that returns a DomainError instead of panicking
// when y is 0. z and r are left unchanged on error.
func (z *Int) CheckedDivRem(x, y, r *Int) (*Int, *Int, error) {
	if y.sign == Zero {
		return z, r, DomainError.New("division by zero")
	}

	z, r = z.DivRem(x, y, r)

	return z, r, nil
}

// CheckedQuo is Quo that returns a DomainError instead of panicking when y
// is 0. z is left unchanged on error.
func (z *Int) CheckedQuo(x, y *Int) (*Int, error) {
	z, _, err := z.CheckedDivRem(x, y, new(Int))

	return z, err
}

// CheckedRem is Rem that returns a DomainError instead of panicking when y
// is 0. z is left unchanged on error.
func (z *Int) CheckedRem(x, y *Int) (*Int, error) {
	_, r, err := new(Int).CheckedDivRem(x, y, z)

	return r, err
}

// DivFloor sets z to floor(x / y) and returns z. It panics with a
// DomainError if y is 0.
func (z *Int) DivFloor(x, y *Int) *Int {
	z.DivModFloor(x, y, new(Int))

	return z
}

// ModFloor sets z to x - y*floor(x / y) and returns z. The result has the
// sign of y. It panics with a DomainError if y is 0.
func (z *Int) ModFloor(x, y *Int) *Int {
	new(Int).DivModFloor(x, y, z)

	return z
}

// DivModFloor sets z to floor(x / y) and m to x - y*z and returns (z, m). z
// and m must be distinct. It panics with a DomainError if y is 0.
func (z *Int) DivModFloor(x, y, m *Int) (*Int, *Int) {
	checkDivisor(y)

	if z == m {
		panic(Error.New("DivModFloor: quotient and modulus alias"))
	}

	xs, ys, ymag := x.sign, y.sign, y.mag
	q, r := magnitude.DivRem(x.mag, ymag)

	if xs == Zero || xs == ys {
		z.setNat(Positive, q)
		m.setNat(ys, r)

		return z, m
	}

	if len(r) == 0 {
		z.setNat(Negative, q)
		m.SetZero()

		return z, m
	}

	// Signs differ with a remainder: step the quotient down and move the
	// modulus into the divisor's range.
	z.setNat(Negative, magnitude.Incr(q))
	m.setNat(ys, magnitude.Sub(ymag, r))

	return z, m
}

// DivCeil sets z to ceil(x / y) and returns z. It panics with a DomainError
// if y is 0.
func (z *Int) DivCeil(x, y *Int) *Int {
	checkDivisor(y)

	xs, ys := x.sign, y.sign
	q, r := magnitude.DivRem(x.mag, y.mag)

	if xs != Zero && xs != ys {
		return z.setNat(Negative, q)
	}

	if len(r) != 0 {
		q = magnitude.Incr(q)
	}

	return z.setNat(Positive, q)
}

// IsMultipleOf reports whether x is a multiple of y. 0 is only a multiple
// of 0.
func (x *Int) IsMultipleOf(y *Int) bool {
	return magnitude.IsMultipleOf(x.mag, y.mag)
}

// IsEven reports whether x is even.
func (x *Int) IsEven() bool {
	return x.mag.IsEven()
}

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool {
	return !x.mag.IsEven()
}

// NextMultipleOf sets z to the smallest multiple of y that is >= x when y is
// positive (<= x when y is negative) and returns z.
func (z *Int) NextMultipleOf(x, y *Int) *Int {
	m := new(Int).ModFloor(x, y)
	if m.IsZero() {
		return z.Set(x)
	}

	return z.Add(x, m.Sub(y, m))
}

// PrevMultipleOf sets z to the largest multiple of y that is <= x when y is
// positive (>= x when y is negative) and returns z.
func (z *Int) PrevMultipleOf(x, y *Int) *Int {
	m := new(Int).ModFloor(x, y)

	return z.Sub(x, m)
}

// GCD sets z to the greatest common divisor of |x| and |y| and returns z.
// GCD(0, 0) is 0.
func (z *Int) GCD(x, y *Int) *Int {
	return z.setNat(Positive, magnitude.GCD(x.mag, y.mag))
}

// LCM sets z to the least common multiple of |x| and |y| and returns z. The
// LCM with 0 is 0.
func (z *Int) LCM(x, y *Int) *Int {
	return z.setNat(Positive, magnitude.LCM(x.mag, y.mag))
}

// GCDLCM returns the greatest common divisor and least common multiple of x
// and y.
func GCDLCM(x, y *Int) (gcd, lcm *Int) {
	g := magnitude.GCD(x.mag, y.mag)

	lcm = new(Int)
	if !g.IsZero() {
		lcm.setNat(Positive, magnitude.Mul(magnitude.Div(x.mag, g), y.mag))
	}

	return new(Int).setNat(Positive, g), lcm
}

// ExtendedGCD returns the greatest common divisor g of a and b together with
// Bézout coefficients x and y such that a*x + b*y == g. g is never negative.
func ExtendedGCD(a, b *Int) (g, x, y *Int) {
	// Remainder sequence (r0, r1) with coefficients tracking r = a*s + b*t.
	r0, r1 := b.Clone(), a.Clone()
	s0, s1 := new(Int), NewInt(1)
	t0, t1 := NewInt(1), new(Int)

	q, tmp := new(Int), new(Int)

	step := func(v0, v1 *Int) (*Int, *Int) {
		// (v0, v1) = (v1 - q*v0, v0)
		tmp.Mul(q, v0)
		v1.Sub(v1, tmp)

		return v1, v0
	}

	for !r0.IsZero() {
		q.Quo(r1, r0)

		r0, r1 = step(r0, r1)
		s0, s1 = step(s0, s1)
		t0, t1 = step(t0, t1)
	}

	if r1.IsNegative() {
		return r1.Neg(r1), s1.Neg(s1), t1.Neg(t1)
	}

	return r1, s1, t1
}

// ExtendedGCDLCM returns the results of ExtendedGCD(a, b) along with the
// least common multiple of a and b.
func ExtendedGCDLCM(a, b *Int) (g, x, y, lcm *Int) {
	g, x, y = ExtendedGCD(a, b)

	return g, x, y, new(Int).LCM(a, b)
}
