package bigint_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/magnitude"
)

// corpus covers zero, small values, limb boundaries and multi limb values of
// both signs.
var corpus = []string{
	"0",
	"1", "-1",
	"2", "-2",
	"7", "-7",
	"8", "-8",
	"127", "-127",
	"128", "-128",
	"255", "-256",
	"1125", "-1125",
	"4294967295", "-4294967296",
	"9223372036854775807", "-9223372036854775808",
	"18446744073709551615", "-18446744073709551615",
	"18446744073709551616", "-18446744073709551616",
	"340282366920938463463374607431768211455",
	"-340282366920938463463374607431768211457",
	"6277101735386680763835789423207666416102355444464034512896",
	"-6277101735386680763835789423207666416102355444464034512895",
	"-98765432109876543210987654321098765432109876543210",
}

func parse(t *testing.T, s string) *bigint.Int {
	t.Helper()

	x, err := bigint.Parse(s, 10)
	require.NoError(t, err)

	return x
}

func refOf(t *testing.T, s string) *big.Int {
	t.Helper()

	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	return b
}

func requireInt(t *testing.T, expected string, actual *bigint.Int) {
	t.Helper()

	require.Equal(t, expected, actual.String())
	requireCanonical(t, actual)
}

func requireCanonical(t *testing.T, x *bigint.Int) {
	t.Helper()

	words := x.Words()
	if x.Sign() == bigint.Zero {
		require.Empty(t, words)
		return
	}

	require.NotEmpty(t, words)
	require.NotZero(t, words[len(words)-1])
}

func TestFromParts(t *testing.T) {
	type TC struct {
		name string
		sign bigint.Sign
		mag  magnitude.Nat
		want string
	}

	tcs := []TC{
		{"zero sign clears magnitude", bigint.Zero, magnitude.New(5), "0"},
		{"zero magnitude clears sign", bigint.Negative, nil, "0"},
		{"unnormalized zero magnitude", bigint.Positive, magnitude.Nat{0, 0}, "0"},
		{"negative", bigint.Negative, magnitude.New(5), "-5"},
		{"unnormalized", bigint.Positive, magnitude.Nat{5, 0}, "5"},
		{"out of range sign", bigint.Sign(-7), magnitude.New(5), "-5"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := bigint.FromParts(tc.sign, tc.mag)
			requireInt(t, tc.want, x)
		})
	}

	t.Run("magnitude is copied", func(t *testing.T) {
		mag := magnitude.New(5)
		x := bigint.FromParts(bigint.Positive, mag)
		mag[0] = 6

		requireInt(t, "5", x)

		m := x.Magnitude()
		m[0] = 7
		requireInt(t, "5", x)
	})
}

func TestCanonicalZero(t *testing.T) {
	one := bigint.NewInt(1)
	minusOne := bigint.NewInt(-1)

	results := []*bigint.Int{
		new(bigint.Int).Add(one, minusOne),
		new(bigint.Int).Sub(minusOne, minusOne),
		new(bigint.Int).Mul(minusOne, new(bigint.Int)),
		new(bigint.Int).Neg(new(bigint.Int)),
		new(bigint.Int).Not(minusOne),
		new(bigint.Int).And(minusOne, new(bigint.Int)),
		new(bigint.Int).Xor(minusOne, bigint.NewInt(-1)),
		new(bigint.Int).Rsh(one, 1),
		new(bigint.Int).Rem(bigint.NewInt(-6), bigint.NewInt(3)),
		new(bigint.Int).ModFloor(bigint.NewInt(-6), bigint.NewInt(3)),
		new(bigint.Int).DivFloor(bigint.NewInt(-1), bigint.NewInt(-3)),
		new(bigint.Int).Quo(bigint.NewInt(-1), bigint.NewInt(3)),
		new(bigint.Int).ModPow(bigint.NewInt(-3), bigint.NewInt(3), bigint.NewInt(-1)),
		bigint.FromSignedBytes([]byte{0, 0}),
		bigint.FromBytes(bigint.Negative, []byte{0}),
	}

	for i, x := range results {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			require.Equal(t, bigint.Zero, x.Sign())
			require.True(t, x.IsZero())
			requireCanonical(t, x)
			require.Equal(t, "0", x.String())
		})
	}
}

func TestCmp(t *testing.T) {
	for i, a := range corpus {
		for j, b := range corpus {
			x, y := parse(t, a), parse(t, b)
			require.Equal(t, refOf(t, a).Cmp(refOf(t, b)), x.Cmp(y), "[%d][%d] cmp(%s, %s)", i, j, a, b)
			require.Equal(t, refOf(t, a).CmpAbs(refOf(t, b)), x.CmpAbs(y), "[%d][%d] cmpabs(%s, %s)", i, j, a, b)
			require.Equal(t, a == b, x.Equal(y))

			if x.Equal(y) {
				require.Equal(t, x.Hash(), y.Hash())
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	for i, a := range corpus {
		for j, b := range corpus {
			t.Run(fmt.Sprintf("[%d][%d]", i, j), func(t *testing.T) {
				x, y := parse(t, a), parse(t, b)
				ra, rb := refOf(t, a), refOf(t, b)

				requireInt(t, new(big.Int).Add(ra, rb).String(), new(bigint.Int).Add(x, y))
				requireInt(t, new(big.Int).Sub(ra, rb).String(), new(bigint.Int).Sub(x, y))
				requireInt(t, new(big.Int).Mul(ra, rb).String(), new(bigint.Int).Mul(x, y))

				if rb.Sign() != 0 {
					q, r := new(bigint.Int).DivRem(x, y, new(bigint.Int))
					rq, rr := new(big.Int).QuoRem(ra, rb, new(big.Int))
					requireInt(t, rq.String(), q)
					requireInt(t, rr.String(), r)
				}

				// Operands are never modified.
				requireInt(t, a, x)
				requireInt(t, b, y)
			})
		}
	}
}

func TestArithmeticLaws(t *testing.T) {
	vals := make([]*bigint.Int, len(corpus))
	for i, s := range corpus {
		vals[i] = parse(t, s)
	}

	for _, a := range vals {
		require.True(t, new(bigint.Int).Sub(a, a).IsZero())

		for _, b := range vals {
			ab := new(bigint.Int).Add(a, b)
			ba := new(bigint.Int).Add(b, a)
			require.True(t, ab.Equal(ba), "%s + %s", a, b)

			for _, c := range vals[:12] {
				// (a+b)+c == a+(b+c)
				l := new(bigint.Int).Add(ab, c)
				r := new(bigint.Int).Add(a, new(bigint.Int).Add(b, c))
				require.True(t, l.Equal(r))

				// a*(b+c) == a*b + a*c
				l = new(bigint.Int).Mul(a, new(bigint.Int).Add(b, c))
				r = new(bigint.Int).Add(new(bigint.Int).Mul(a, b), new(bigint.Int).Mul(a, c))
				require.True(t, l.Equal(r))
			}
		}
	}
}

func TestAliasing(t *testing.T) {
	type TC struct {
		name string
		op   func(z, x, y *bigint.Int) *bigint.Int
	}

	tcs := []TC{
		{"add", (*bigint.Int).Add},
		{"sub", (*bigint.Int).Sub},
		{"mul", (*bigint.Int).Mul},
		{"quo", (*bigint.Int).Quo},
		{"rem", (*bigint.Int).Rem},
		{"and", (*bigint.Int).And},
		{"or", (*bigint.Int).Or},
		{"xor", (*bigint.Int).Xor},
		{"andnot", (*bigint.Int).AndNot},
		{"divfloor", (*bigint.Int).DivFloor},
		{"modfloor", (*bigint.Int).ModFloor},
		{"divceil", (*bigint.Int).DivCeil},
		{"gcd", (*bigint.Int).GCD},
		{"lcm", (*bigint.Int).LCM},
	}

	pairs := [][2]string{
		{"-340282366920938463463374607431768211457", "18446744073709551616"},
		{"340282366920938463463374607431768211455", "-7"},
		{"-8", "-98765432109876543210987654321098765432109876543210"},
		{"1125", "1125"},
	}

	for i, tc := range tcs {
		for j, p := range pairs {
			t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.name, j), func(t *testing.T) {
				want := tc.op(new(bigint.Int), parse(t, p[0]), parse(t, p[1])).String()

				x, y := parse(t, p[0]), parse(t, p[1])
				requireInt(t, want, tc.op(x, x, y))

				x, y = parse(t, p[0]), parse(t, p[1])
				requireInt(t, want, tc.op(y, x, y))

				x = parse(t, p[0])
				want = tc.op(new(bigint.Int), parse(t, p[0]), parse(t, p[0])).String()
				requireInt(t, want, tc.op(x, x, x))
			})
		}
	}
}

func TestPow(t *testing.T) {
	type TC struct {
		x    string
		e    uint64
		want string
	}

	tcs := []TC{
		{"0", 0, "1"},
		{"-5", 0, "1"},
		{"0", 3, "0"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"3", 40, "12157665459056928801"},
		{"-18446744073709551616", 2, "340282366920938463463374607431768211456"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s^%d", i, tc.x, tc.e), func(t *testing.T) {
			requireInt(t, tc.want, new(bigint.Int).Pow(parse(t, tc.x), tc.e))
		})
	}
}

func TestMisc(t *testing.T) {
	requireInt(t, "5", new(bigint.Int).Abs(bigint.NewInt(-5)))
	requireInt(t, "-1", new(bigint.Int).Signum(bigint.NewInt(-5)))
	requireInt(t, "1", new(bigint.Int).Signum(parse(t, "98765432109876543210987654321")))
	requireInt(t, "0", new(bigint.Int).Signum(new(bigint.Int)))

	requireInt(t, "3", new(bigint.Int).AbsSub(bigint.NewInt(5), bigint.NewInt(2)))
	requireInt(t, "0", new(bigint.Int).AbsSub(bigint.NewInt(2), bigint.NewInt(5)))

	requireInt(t, "0", bigint.Sum())
	requireInt(t, "1", bigint.Product())
	requireInt(t, "6", bigint.Sum(bigint.NewInt(1), bigint.NewInt(2), bigint.NewInt(3)))
	requireInt(t, "-24", bigint.Product(bigint.NewInt(-2), bigint.NewInt(3), bigint.NewInt(4)))

	require.True(t, bigint.NewInt(1).IsOne())
	require.False(t, bigint.NewInt(-1).IsOne())
	require.True(t, bigint.NewInt(-1).IsNegative())
	require.True(t, bigint.NewInt(1).IsPositive())

	x := parse(t, "-340282366920938463463374607431768211457")
	c := x.Clone()
	c.Add(c, bigint.NewInt(1))
	requireInt(t, "-340282366920938463463374607431768211457", x)

	require.Equal(t, uint(129), x.BitLen())

	tz, ok := bigint.NewInt(-40).TrailingZeros()
	require.True(t, ok)
	require.Equal(t, uint(3), tz)

	_, ok = new(bigint.Int).TrailingZeros()
	require.False(t, ok)
}

func TestBit(t *testing.T) {
	for _, s := range corpus {
		x, r := parse(t, s), refOf(t, s)

		for i := uint(0); i < 200; i += 7 {
			require.Equal(t, r.Bit(int(i)), x.Bit(i), "%s bit %d", s, i)
		}
	}
}

func TestSign(t *testing.T) {
	require.Equal(t, bigint.Positive, bigint.Negative.Neg())
	require.Equal(t, bigint.Zero, bigint.Zero.Neg())

	require.Equal(t, bigint.Positive, bigint.Negative.Mul(bigint.Negative))
	require.Equal(t, bigint.Negative, bigint.Negative.Mul(bigint.Positive))
	require.Equal(t, bigint.Zero, bigint.Zero.Mul(bigint.Negative))
	require.Equal(t, bigint.Zero, bigint.Positive.Mul(bigint.Zero))

	require.Equal(t, "-", bigint.Negative.String())
}
