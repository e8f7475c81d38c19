package bigint

import "github.com/calebcase/bigint/magnitude"

// scalar returns v as a temporary operand.
func scalar[T Integer](v T) *Int {
	sign, abs := split(v)

	return &Int{sign: sign, mag: magnitude.New(abs)}
}

// AddScalar sets z to x + y and returns z.
func AddScalar[T Integer](z, x *Int, y T) *Int {
	return z.Add(x, scalar(y))
}

// SubScalar sets z to x - y and returns z.
func SubScalar[T Integer](z, x *Int, y T) *Int {
	return z.Sub(x, scalar(y))
}

// ScalarSub sets z to x - y and returns z.
func ScalarSub[T Integer](z *Int, x T, y *Int) *Int {
	return z.Sub(scalar(x), y)
}

// MulScalar sets z to x * y and returns z.
func MulScalar[T Integer](z, x *Int, y T) *Int {
	return z.Mul(x, scalar(y))
}

// QuoScalar sets z to x / y truncated toward zero and returns z.
func QuoScalar[T Integer](z, x *Int, y T) *Int {
	return z.Quo(x, scalar(y))
}

// RemScalar sets z to x % y truncated toward zero and returns z.
func RemScalar[T Integer](z, x *Int, y T) *Int {
	return z.Rem(x, scalar(y))
}

// ScalarQuo sets z to x / y truncated toward zero and returns z.
func ScalarQuo[T Integer](z *Int, x T, y *Int) *Int {
	return z.Quo(scalar(x), y)
}

// ScalarRem sets z to x % y truncated toward zero and returns z.
func ScalarRem[T Integer](z *Int, x T, y *Int) *Int {
	return z.Rem(scalar(x), y)
}

// CmpScalar compares x and y and returns -1, 0 or +1.
func CmpScalar[T Integer](x *Int, y T) int {
	return x.Cmp(scalar(y))
}
