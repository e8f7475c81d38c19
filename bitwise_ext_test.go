package bigint_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigint"
)

func TestBitwise(t *testing.T) {
	for i, a := range corpus {
		for j, b := range corpus {
			t.Run(fmt.Sprintf("[%d][%d]", i, j), func(t *testing.T) {
				x, y := parse(t, a), parse(t, b)
				ra, rb := refOf(t, a), refOf(t, b)

				requireInt(t, new(big.Int).And(ra, rb).String(), new(bigint.Int).And(x, y))
				requireInt(t, new(big.Int).Or(ra, rb).String(), new(bigint.Int).Or(x, y))
				requireInt(t, new(big.Int).Xor(ra, rb).String(), new(bigint.Int).Xor(x, y))
				requireInt(t, new(big.Int).AndNot(ra, rb).String(), new(bigint.Int).AndNot(x, y))

				requireInt(t, a, x)
				requireInt(t, b, y)
			})
		}
	}
}

func TestBitwiseIdentities(t *testing.T) {
	zero := new(bigint.Int)
	minusOne := bigint.NewInt(-1)

	for i, s := range corpus {
		t.Run(fmt.Sprintf("[%d]%s", i, s), func(t *testing.T) {
			a := parse(t, s)

			// ^a == -a - 1
			not := new(bigint.Int).Not(a)
			expected := new(bigint.Int).Sub(new(bigint.Int).Neg(a), bigint.NewInt(1))
			requireInt(t, expected.String(), not)

			requireInt(t, s, new(bigint.Int).Not(not))
			requireInt(t, s, new(bigint.Int).And(a, a))
			requireInt(t, s, new(bigint.Int).And(a, parse(t, s)))
			requireInt(t, s, new(bigint.Int).Or(a, zero))
			requireInt(t, s, new(bigint.Int).And(a, minusOne))
			requireInt(t, "-1", new(bigint.Int).Or(a, minusOne))
			requireInt(t, "0", new(bigint.Int).Xor(a, parse(t, s)))
			requireInt(t, "0", new(bigint.Int).And(a, zero))
			requireInt(t, "-1", new(bigint.Int).Xor(a, not))

			for _, o := range corpus {
				b := parse(t, o)

				// ^(a & b) == ^a | ^b
				l := new(bigint.Int).Not(new(bigint.Int).And(a, b))
				r := new(bigint.Int).Or(new(bigint.Int).Not(a), new(bigint.Int).Not(b))
				require.True(t, l.Equal(r), "^(%s & %s)", a, b)

				// ^(a | b) == ^a & ^b
				l = new(bigint.Int).Not(new(bigint.Int).Or(a, b))
				r = new(bigint.Int).And(new(bigint.Int).Not(a), new(bigint.Int).Not(b))
				require.True(t, l.Equal(r), "^(%s | %s)", a, b)
			}
		})
	}
}

func TestNotInPlace(t *testing.T) {
	type TC struct {
		in   string
		want string
	}

	tcs := []TC{
		{"-2", "1"},
		{"-1", "0"},
		{"0", "-1"},
		{"1", "-2"},
		{"18446744073709551615", "-18446744073709551616"},
		{"-18446744073709551616", "18446744073709551615"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.in), func(t *testing.T) {
			x := parse(t, tc.in)
			requireInt(t, tc.want, x.Not(x))
		})
	}
}

func TestShift(t *testing.T) {
	type TC struct {
		in  string
		n   uint
		lsh string
		rsh string
	}

	tcs := []TC{
		{"-7", 1, "-14", "-4"},
		{"-8", 1, "-16", "-4"},
		{"7", 1, "14", "3"},
		{"-1", 10, "-1024", "-1"},
		{"-1", 0, "-1", "-1"},
		{"1", 100, "1267650600228229401496703205376", "0"},
		{"0", 5, "0", "0"},
		{"-5", 1000, "", "-1"},
		{"-18446744073709551616", 64, "", "-1"},
		{"-18446744073709551617", 64, "", "-2"},
		{"-340282366920938463463374607431768211457", 63, "", "-36893488147419103233"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.in, tc.n), func(t *testing.T) {
			x := parse(t, tc.in)

			if tc.lsh != "" {
				requireInt(t, tc.lsh, new(bigint.Int).Lsh(x, tc.n))
			}

			requireInt(t, tc.rsh, new(bigint.Int).Rsh(x, tc.n))
			requireInt(t, tc.in, x)
		})
	}

	t.Run("laws", func(t *testing.T) {
		for _, s := range corpus {
			for n := uint(0); n < 140; n += 13 {
				x, r := parse(t, s), refOf(t, s)

				// x << n == x * 2**n
				p := new(bigint.Int).Lsh(bigint.NewInt(1), n)
				require.True(t, new(bigint.Int).Lsh(x, n).Equal(new(bigint.Int).Mul(x, p)))

				// x >> n == floor(x / 2**n); big.Int.Rsh floors as well.
				requireInt(t, new(big.Int).Rsh(r, n).String(), new(bigint.Int).Rsh(x, n))
				requireInt(t, new(bigint.Int).DivFloor(x, p).String(), new(bigint.Int).Rsh(x, n))
			}
		}
	})

	t.Run("in place", func(t *testing.T) {
		x := bigint.NewInt(-7)
		x.Rsh(x, 1)
		requireInt(t, "-4", x)

		x.Lsh(x, 70)
		requireInt(t, "-4722366482869645213696", x)
	})
}
