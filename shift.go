package bigint

import "github.com/calebcase/bigint/magnitude"

// Lsh sets z to x << n (x * 2**n) and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	return z.setNat(x.sign, magnitude.Shl(x.mag, n))
}

// Rsh sets z to x >> n and returns z. The result is rounded toward negative
// infinity (floor(x / 2**n)) as if x were stored in two's complement.
func (z *Int) Rsh(x *Int, n uint) *Int {
	sign, roundDown := x.sign, shrRoundsDown(x, n)

	mag := magnitude.Shr(x.mag, n)
	if roundDown {
		mag = magnitude.Incr(mag)
	}

	return z.setNat(sign, mag)
}

// shrRoundsDown reports whether shifting x right by n discards any set bits
// of a negative x, in which case the truncated magnitude is one too small.
func shrRoundsDown(x *Int, n uint) bool {
	if x.sign != Negative || n == 0 {
		return false
	}

	tz, _ := x.mag.TrailingZeros()

	return tz < n
}
