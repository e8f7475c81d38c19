package bigint

import "github.com/calebcase/bigint/magnitude"

// ModPow sets z to x**e mod m and returns z. The result has the sign of m:
// it is in [0, m) for positive m and in (m, 0] for negative m. It panics with
// a DomainError if e is negative or m is 0.
func (z *Int) ModPow(x, e, m *Int) *Int {
	switch {
	case e.sign == Negative:
		panic(DomainError.New("negative exponent %s", e))
	case m.sign == Zero:
		panic(DomainError.New("zero modulus"))
	}

	r := magnitude.Exp(x.mag, e.mag, m.mag)
	if r.IsZero() {
		return z.SetZero()
	}

	// |x|**e mod |m| is nonzero here. A negative power of x is mirrored
	// into the positive range and a negative modulus mirrors again.
	negPower := x.sign == Negative && !e.mag.IsEven()
	negMod := m.sign == Negative

	switch {
	case !negPower && !negMod:
		return z.setNat(Positive, r)
	case negPower && !negMod:
		return z.setNat(Positive, magnitude.Sub(m.mag, r))
	case !negPower && negMod:
		return z.setNat(Negative, magnitude.Sub(m.mag, r))
	}

	return z.setNat(Negative, r)
}
