package bigint

import (
	"math"
	"math/big"

	"fortio.org/safecast"

	"github.com/calebcase/bigint/magnitude"
)

// Integer is the set of fixed width integer types an Int converts to and
// from.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// signed reports whether T is a signed type.
func signed[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// split returns the sign and absolute value of v.
func split[T Integer](v T) (Sign, uint64) {
	switch {
	case v == 0:
		return Zero, 0
	case v > 0:
		return Positive, uint64(v)
	}

	// Negate in uint64 so the minimum value does not overflow.
	return Negative, -uint64(int64(v))
}

// New returns a new Int set to v.
func New[T Integer](v T) *Int {
	sign, abs := split(v)

	return new(Int).setNat(sign, magnitude.New(abs))
}

// NewInt returns a new Int set to v.
func NewInt(v int64) *Int {
	return New(v)
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	sign, abs := split(v)

	return z.setNat(sign, append(z.mag[:0], magnitude.New(abs)...))
}

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	sign, abs := split(v)

	return z.setNat(sign, append(z.mag[:0], magnitude.New(abs)...))
}

// Int64 returns x as an int64. It returns a RangeError if x does not fit.
func (x *Int) Int64() (int64, error) {
	if !x.mag.IsUint64() {
		return 0, RangeError.New("%s overflows int64", x)
	}

	abs := x.mag.Uint64()

	switch {
	case x.sign != Negative && abs <= math.MaxInt64:
		return int64(abs), nil
	case x.sign == Negative && abs <= math.MaxInt64:
		return -int64(abs), nil
	case x.sign == Negative && abs == 1<<63:
		return math.MinInt64, nil
	}

	return 0, RangeError.New("%s overflows int64", x)
}

// Uint64 returns x as a uint64. It returns a RangeError if x is negative or
// does not fit.
func (x *Int) Uint64() (uint64, error) {
	switch {
	case x.sign == Negative:
		return 0, RangeError.New("%s is negative", x)
	case !x.mag.IsUint64():
		return 0, RangeError.New("%s overflows uint64", x)
	}

	return x.mag.Uint64(), nil
}

// ToInteger returns x converted to T. It returns 0 and a RangeError if x
// does not fit.
func ToInteger[T Integer](x *Int) (v T, err error) {
	if x.sign == Negative {
		if !signed[T]() {
			return 0, RangeError.New("%s is negative", x)
		}

		i, err := x.Int64()
		if err != nil {
			return 0, err
		}

		v, err = safecast.Conv[T](i)
		if err != nil {
			return 0, RangeError.Wrap(err)
		}

		return v, nil
	}

	u, err := x.Uint64()
	if err != nil {
		return 0, err
	}

	v, err = safecast.Conv[T](u)
	if err != nil {
		return 0, RangeError.Wrap(err)
	}

	return v, nil
}

// IsInt64 reports whether x fits in an int64.
func (x *Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// IsUint64 reports whether x fits in a uint64.
func (x *Int) IsUint64() bool {
	return x.sign != Negative && x.mag.IsUint64()
}

// Float64 returns the float64 nearest to x and whether the conversion was
// exact.
func (x *Int) Float64() (float64, bool) {
	f, acc := new(big.Float).SetInt(x.ToBig()).Float64()

	return f, acc == big.Exact
}

// SetFloat64 sets z to f truncated toward zero and returns z. It reports
// whether the conversion was exact. NaN and infinities are a RangeError and
// leave z unchanged.
func (z *Int) SetFloat64(f float64) (*Int, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return z, false, RangeError.New("%v is not finite", f)
	}

	b, acc := big.NewFloat(f).Int(nil)

	return z.SetBig(b), acc == big.Exact, nil
}

// FromBig returns x as an Int.
func FromBig(x *big.Int) *Int {
	return new(Int).SetBig(x)
}

// SetBig sets z to x and returns z.
func (z *Int) SetBig(x *big.Int) *Int {
	return z.setNat(Sign(x.Sign()), append(z.mag[:0], x.Bits()...))
}

// ToBig returns x as a new big.Int.
func (x *Int) ToBig() *big.Int {
	b := x.mag.Big()
	if x.sign == Negative {
		b.Neg(b)
	}

	return b
}
