package magnitude

import "math/big"

// Add returns x + y.
func Add(x, y Nat) Nat {
	return result(new(big.Int).Add(x.view(), y.view()))
}

// Sub returns x - y. The caller guarantees x >= y.
func Sub(x, y Nat) Nat {
	if x.Cmp(y) < 0 {
		panic(Error.New("subtraction underflow"))
	}

	return result(new(big.Int).Sub(x.view(), y.view()))
}

// Mul returns x * y.
func Mul(x, y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return nil
	}

	return result(new(big.Int).Mul(x.view(), y.view()))
}

// DivRem returns the truncated quotient and remainder of x / y. It panics if
// y is zero.
func DivRem(x, y Nat) (q, r Nat) {
	if y.IsZero() {
		panic(Error.New("division by zero"))
	}

	if x.Cmp(y) < 0 {
		return nil, x.Clone()
	}

	bq, br := new(big.Int).QuoRem(x.view(), y.view(), new(big.Int))

	return result(bq), result(br)
}

// Div returns the truncated quotient of x / y.
func Div(x, y Nat) Nat {
	q, _ := DivRem(x, y)

	return q
}

// Rem returns the remainder of x / y.
func Rem(x, y Nat) Nat {
	_, r := DivRem(x, y)

	return r
}

// IsMultipleOf reports whether x is a multiple of y. Zero is only a multiple
// of zero.
func IsMultipleOf(x, y Nat) bool {
	if y.IsZero() {
		return x.IsZero()
	}

	return Rem(x, y).IsZero()
}

// Shl returns x << s.
func Shl(x Nat, s uint) Nat {
	if x.IsZero() {
		return nil
	}

	return result(new(big.Int).Lsh(x.view(), s))
}

// Shr returns x >> s.
func Shr(x Nat, s uint) Nat {
	if s >= x.BitLen() {
		return nil
	}

	return result(new(big.Int).Rsh(x.view(), s))
}

// And returns x & y.
func And(x, y Nat) Nat {
	return result(new(big.Int).And(x.view(), y.view()))
}

// Or returns x | y.
func Or(x, y Nat) Nat {
	return result(new(big.Int).Or(x.view(), y.view()))
}

// Xor returns x ^ y.
func Xor(x, y Nat) Nat {
	return result(new(big.Int).Xor(x.view(), y.view()))
}

// AndNot returns x &^ y.
func AndNot(x, y Nat) Nat {
	return result(new(big.Int).AndNot(x.view(), y.view()))
}

// Pow returns x ** e. Zero to the zero is one.
func Pow(x Nat, e uint64) Nat {
	return result(new(big.Int).Exp(x.view(), new(big.Int).SetUint64(e), nil))
}

// Exp returns x ** e mod m. It panics if m is zero.
func Exp(x, e, m Nat) Nat {
	if m.IsZero() {
		panic(Error.New("zero modulus"))
	}

	if m.IsOne() {
		return nil
	}

	return result(new(big.Int).Exp(x.view(), e.view(), m.view()))
}

// GCD returns the greatest common divisor of x and y. GCD(0, 0) is 0.
func GCD(x, y Nat) Nat {
	switch {
	case x.IsZero():
		return y.Clone()
	case y.IsZero():
		return x.Clone()
	}

	return result(new(big.Int).GCD(nil, nil, x.view(), y.view()))
}

// LCM returns the least common multiple of x and y. LCM with zero is 0.
func LCM(x, y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return nil
	}

	g := GCD(x, y)

	return Mul(Div(x, g), y)
}

// Sqrt returns the floor of the square root of x.
func Sqrt(x Nat) Nat {
	if x.IsZero() {
		return nil
	}

	return result(new(big.Int).Sqrt(x.view()))
}

// Cbrt returns the floor of the cube root of x.
func Cbrt(x Nat) Nat {
	return Root(x, 3)
}

// Root returns the floor of the n'th root of x. It panics if n is zero.
func Root(x Nat, n uint) Nat {
	switch {
	case n == 0:
		panic(Error.New("zeroth root"))
	case n == 1 || x.IsZero() || x.IsOne():
		return x.Clone()
	case n == 2:
		return Sqrt(x)
	}

	bl := x.BitLen()
	if bl <= n {
		return One()
	}

	// Newton's iteration decreases monotonically from any starting point
	// above the root, so start at 2^ceil(bl/n).
	nn := new(big.Int).SetUint64(uint64(n))
	n1 := new(big.Int).SetUint64(uint64(n - 1))
	xv := x.view()

	guess := new(big.Int).Lsh(big.NewInt(1), (bl+n-1)/n)
	next := new(big.Int)
	t := new(big.Int)

	for {
		// next = ((n-1)*guess + x/guess^(n-1)) / n
		t.Exp(guess, n1, nil)
		t.Quo(xv, t)
		next.Mul(guess, n1)
		next.Add(next, t)
		next.Quo(next, nn)

		if next.Cmp(guess) >= 0 {
			return result(guess)
		}

		guess, next = next, guess
	}
}
