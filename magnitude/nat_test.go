package magnitude_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigint/magnitude"
)

func nat(t *testing.T, s string) magnitude.Nat {
	t.Helper()

	n, err := magnitude.Parse(s, 10)
	require.NoError(t, err)

	return n
}

func TestNorm(t *testing.T) {
	require.Nil(t, magnitude.Norm(nil))
	require.Nil(t, magnitude.Norm([]magnitude.Word{0, 0}))
	require.Equal(t, magnitude.Nat{1}, magnitude.Norm([]magnitude.Word{1, 0, 0}))
	require.Equal(t, magnitude.Nat{0, 1}, magnitude.Norm([]magnitude.Word{0, 1}))
}

func TestIncrDecr(t *testing.T) {
	t.Run("carry grows", func(t *testing.T) {
		n := magnitude.Nat{^magnitude.Word(0), ^magnitude.Word(0)}
		n = magnitude.Incr(n)
		require.Equal(t, magnitude.Nat{0, 0, 1}, n)
	})

	t.Run("carry grows in spare capacity", func(t *testing.T) {
		buf := make(magnitude.Nat, 1, 4)
		buf[0] = ^magnitude.Word(0)

		n := magnitude.Incr(buf)
		require.Equal(t, magnitude.Nat{0, 1}, n)
		require.Same(t, &buf[0], &n[0])
	})

	t.Run("zero", func(t *testing.T) {
		require.Equal(t, magnitude.Nat{1}, magnitude.Incr(nil))
	})

	t.Run("borrow shrinks", func(t *testing.T) {
		n := magnitude.Decr(magnitude.Nat{0, 1})
		require.Equal(t, magnitude.Nat{^magnitude.Word(0)}, n)
	})

	t.Run("one", func(t *testing.T) {
		require.Nil(t, magnitude.Decr(magnitude.Nat{1}))
	})

	t.Run("zero panics", func(t *testing.T) {
		require.Panics(t, func() {
			magnitude.Decr(nil)
		})
	})
}

func TestArith(t *testing.T) {
	type TC struct {
		name string
		x, y string
		add  string
		mul  string
		quo  string
		rem  string
		gcd  string
		lcm  string
	}

	tcs := []TC{
		{
			name: "small",
			x:    "12", y: "18",
			add: "30", mul: "216", quo: "0", rem: "12", gcd: "6", lcm: "36",
		},
		{
			name: "x zero",
			x:    "0", y: "7",
			add: "7", mul: "0", quo: "0", rem: "0", gcd: "7", lcm: "0",
		},
		{
			name: "multi limb",
			x:    "340282366920938463463374607431768211457", y: "18446744073709551616",
			add: "340282366920938463481821351505477763073",
			mul: "6277101735386680763835789423207666416120802188537744064512",
			quo: "18446744073709551616", rem: "1", gcd: "1",
			lcm: "6277101735386680763835789423207666416120802188537744064512",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x, y := nat(t, tc.x), nat(t, tc.y)
			xc, yc := x.Clone(), y.Clone()

			require.Equal(t, tc.add, magnitude.Text(magnitude.Add(x, y), 10))
			require.Equal(t, tc.mul, magnitude.Text(magnitude.Mul(x, y), 10))

			q, r := magnitude.DivRem(x, y)
			require.Equal(t, tc.quo, magnitude.Text(q, 10))
			require.Equal(t, tc.rem, magnitude.Text(r, 10))

			require.Equal(t, tc.gcd, magnitude.Text(magnitude.GCD(x, y), 10))
			require.Equal(t, tc.lcm, magnitude.Text(magnitude.LCM(x, y), 10))

			require.Equal(t, tc.x, magnitude.Text(magnitude.Sub(magnitude.Add(x, y), y), 10))

			// Inputs are never modified.
			require.Equal(t, xc, x)
			require.Equal(t, yc, y)
		})
	}

	t.Run("sub underflow", func(t *testing.T) {
		require.Panics(t, func() {
			magnitude.Sub(magnitude.New(1), magnitude.New(2))
		})
	})

	t.Run("division by zero", func(t *testing.T) {
		require.Panics(t, func() {
			magnitude.DivRem(magnitude.New(1), nil)
		})
	})
}

func TestBits(t *testing.T) {
	n := magnitude.Shl(magnitude.New(5), 100)

	require.Equal(t, uint(103), n.BitLen())

	tz, ok := n.TrailingZeros()
	require.True(t, ok)
	require.Equal(t, uint(100), tz)

	_, ok = magnitude.Nat(nil).TrailingZeros()
	require.False(t, ok)

	require.Equal(t, uint(1), n.Bit(100))
	require.Equal(t, uint(0), n.Bit(101))
	require.Equal(t, uint(1), n.Bit(102))
	require.Equal(t, uint(0), n.Bit(1000))

	require.Equal(t, magnitude.New(5), magnitude.Shr(n, 100))
	require.Nil(t, magnitude.Shr(n, 103))
	require.Nil(t, magnitude.Shr(n, 1<<20))
}

func TestRoot(t *testing.T) {
	type TC struct {
		x    string
		n    uint
		root string
	}

	tcs := []TC{
		{"0", 3, "0"},
		{"1", 5, "1"},
		{"7", 3, "1"},
		{"8", 3, "2"},
		{"26", 3, "2"},
		{"27", 3, "3"},
		{"99", 2, "9"},
		{"100", 2, "10"},
		{"1267650600228229401496703205376", 5, "1048576"},
		{"1267650600228229401496703205375", 5, "1048575"},
		{"12345678901234567890123456789", 7, "10305"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.x, tc.n), func(t *testing.T) {
			r := magnitude.Root(nat(t, tc.x), tc.n)
			require.Equal(t, tc.root, magnitude.Text(r, 10))
		})
	}

	require.Panics(t, func() {
		magnitude.Root(magnitude.New(4), 0)
	})

	require.Equal(t, magnitude.New(3), magnitude.Cbrt(magnitude.New(63)))
	require.Equal(t, magnitude.New(4), magnitude.Cbrt(magnitude.New(64)))
}

func TestExp(t *testing.T) {
	require.Equal(t, "2", magnitude.Text(magnitude.Exp(magnitude.New(3), magnitude.New(3), magnitude.New(5)), 10))
	require.Nil(t, magnitude.Exp(magnitude.New(3), nil, magnitude.New(1)))
	require.Equal(t, magnitude.New(1), magnitude.Exp(magnitude.New(3), nil, magnitude.New(7)))
	require.Equal(t, magnitude.New(1), magnitude.Pow(nil, 0))
	require.Equal(t, magnitude.New(1024), magnitude.Pow(magnitude.New(2), 10))

	require.Panics(t, func() {
		magnitude.Exp(magnitude.New(3), magnitude.New(3), nil)
	})
}

func TestBytes(t *testing.T) {
	n := magnitude.New(0x0102_0304_0506)

	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, magnitude.Bytes(n))
	require.Equal(t, []byte{6, 5, 4, 3, 2, 1}, magnitude.BytesLE(n))
	require.Equal(t, n, magnitude.FromBytes([]byte{0, 0, 1, 2, 3, 4, 5, 6}))
	require.Equal(t, n, magnitude.FromBytesLE([]byte{6, 5, 4, 3, 2, 1, 0}))

	require.Equal(t, []byte{0}, magnitude.Bytes(nil))
	require.Nil(t, magnitude.FromBytes(nil))
	require.Nil(t, magnitude.FromBytes([]byte{0, 0}))
}

func TestDigits(t *testing.T) {
	n := nat(t, "340282366920938463463374607431768211457") // 2^128 + 1

	require.Equal(t, []uint32{1, 0, 0, 0, 1}, magnitude.U32Digits(n))
	require.Equal(t, []uint64{1, 0, 1}, magnitude.U64Digits(n))
	require.Equal(t, n, magnitude.FromU32Digits([]uint32{1, 0, 0, 0, 1, 0}))
	require.Equal(t, n, magnitude.FromU64Digits([]uint64{1, 0, 1}))

	require.Empty(t, magnitude.U32Digits(nil))
	require.Nil(t, magnitude.FromU32Digits(nil))
}

func TestRadix(t *testing.T) {
	type TC struct {
		name   string
		value  string
		radix  uint32
		digits []byte
	}

	tcs := []TC{
		{"zero", "0", 10, []byte{0}},
		{"decimal", "1234", 10, []byte{1, 2, 3, 4}},
		{"binary", "5", 2, []byte{1, 0, 1}},
		{"base 256", "65536", 256, []byte{1, 0, 0}},
		{"base 255", "65025", 255, []byte{1, 0, 0}},
		{"base 3 crosses chunk", "205891132094649", 3, append([]byte{1}, make([]byte, 30)...)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n := nat(t, tc.value)

			ds := magnitude.Radix(n, tc.radix)
			t.Logf("digits: %s", spew.Sdump(ds))
			require.Equal(t, tc.digits, ds)

			back, err := magnitude.FromRadix(ds, tc.radix)
			require.NoError(t, err)
			require.Equal(t, 0, n.Cmp(back))

			le := magnitude.RadixLE(n, tc.radix)
			back, err = magnitude.FromRadixLE(le, tc.radix)
			require.NoError(t, err)
			require.Equal(t, 0, n.Cmp(back))
		})
	}

	t.Run("invalid digit", func(t *testing.T) {
		_, err := magnitude.FromRadix([]byte{1, 10}, 10)
		require.Error(t, err)
		require.True(t, magnitude.Error.Has(err))
	})

	t.Run("invalid radix", func(t *testing.T) {
		_, err := magnitude.FromRadix([]byte{1}, 257)
		require.Error(t, err)

		require.Panics(t, func() {
			magnitude.RadixLE(magnitude.New(1), 1)
		})
	})

	t.Run("empty", func(t *testing.T) {
		n, err := magnitude.FromRadix(nil, 10)
		require.NoError(t, err)
		require.True(t, n.IsZero())
	})
}

func TestParse(t *testing.T) {
	type TC struct {
		name  string
		input string
		radix int
		value string
		err   bool
	}

	tcs := []TC{
		{name: "decimal", input: "12345", radix: 10, value: "12345"},
		{name: "plus", input: "+12", radix: 10, value: "12"},
		{name: "underscores", input: "1_000_000", radix: 10, value: "1000000"},
		{name: "trailing underscore", input: "1_", radix: 10, value: "1"},
		{name: "hex mixed case", input: "fF", radix: 16, value: "255"},
		{name: "base 36", input: "zz", radix: 36, value: "1295"},
		{name: "leading underscore", input: "_1", radix: 10, err: true},
		{name: "empty", input: "", radix: 10, err: true},
		{name: "sign only", input: "+", radix: 10, err: true},
		{name: "digit out of range", input: "12", radix: 2, err: true},
		{name: "junk", input: "1.5", radix: 10, err: true},
		{name: "minus", input: "-1", radix: 10, err: true},
		{name: "radix low", input: "1", radix: 1, err: true},
		{name: "radix high", input: "1", radix: 37, err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n, err := magnitude.Parse(tc.input, tc.radix)
			if tc.err {
				require.Error(t, err)
				require.True(t, magnitude.Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.value, magnitude.Text(n, 10))
		})
	}
}

func TestBig(t *testing.T) {
	b, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
	require.True(t, ok)

	n := magnitude.FromBig(b)
	require.Equal(t, "123456789012345678901234567890", magnitude.Text(n, 10))

	nb := n.Big()
	nb.Add(nb, big.NewInt(1))
	require.Equal(t, "123456789012345678901234567890", magnitude.Text(n, 10))
}
