package bigint

import (
	"strings"

	"github.com/calebcase/bigint/magnitude"
)

// MinRadix and MaxRadix bound the radix of the text conversions. The digit
// conversions accept radix 2 through 256.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Text returns x in the given radix (2 to 36) using lower case letters for
// digits above 9. It panics with a DomainError if radix is out of range.
func (x *Int) Text(radix int) string {
	if radix < MinRadix || radix > MaxRadix {
		panic(DomainError.New("radix out of range: %d", radix))
	}

	if x == nil {
		return "<nil>"
	}

	s := magnitude.Text(x.mag, radix)
	if x.sign == Negative {
		return "-" + s
	}

	return s
}

// String returns x in base 10.
func (x *Int) String() string {
	return x.Text(10)
}

// SetString sets z to the value of s in the given radix (2 to 36) and
// returns z. s may begin with a '-' or '+' sign and digits may be separated
// by underscores. On failure z is unchanged and a ParseError is returned.
func (z *Int) SetString(s string, radix int) (*Int, error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, ParseError.New("radix out of range: %d", radix)
	}

	sign := Positive

	// "-+1" is not a valid number so '-' only consumes a sign when it is
	// not followed by another.
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign = Negative
		if !strings.HasPrefix(rest, "+") {
			s = rest
		}
	}

	mag, err := magnitude.Parse(s, radix)
	if err != nil {
		return nil, ParseError.Wrap(err)
	}

	return z.setNat(sign, mag), nil
}

// Parse returns the value of s in the given radix. See SetString.
func Parse(s string, radix int) (*Int, error) {
	return new(Int).SetString(s, radix)
}

// MustParse is like Parse but panics on error. It is intended for
// constants.
func MustParse(s string, radix int) *Int {
	z, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}

	return z
}

// Radix returns the sign of x and the big-endian digits of |x| in the given
// radix (2 to 256). Zero is a single zero digit. It panics with a
// DomainError if radix is out of range.
func (x *Int) Radix(radix uint32) (Sign, []byte) {
	checkDigitRadix(radix)

	return x.sign, magnitude.Radix(x.mag, radix)
}

// RadixLE returns the sign of x and the little-endian digits of |x| in the
// given radix.
func (x *Int) RadixLE(radix uint32) (Sign, []byte) {
	checkDigitRadix(radix)

	return x.sign, magnitude.RadixLE(x.mag, radix)
}

func checkDigitRadix(radix uint32) {
	if radix < 2 || radix > 256 {
		panic(DomainError.New("radix out of range: %d", radix))
	}
}

// FromRadix returns the integer with the given sign and big-endian digits in
// the given radix (2 to 256). It returns a ParseError if a digit is not less
// than radix or radix is out of range.
func FromRadix(sign Sign, ds []byte, radix uint32) (*Int, error) {
	mag, err := magnitude.FromRadix(ds, radix)
	if err != nil {
		return nil, ParseError.Wrap(err)
	}

	return new(Int).setNat(clampSign(sign), mag), nil
}

// FromRadixLE returns the integer with the given sign and little-endian
// digits in the given radix.
func FromRadixLE(sign Sign, ds []byte, radix uint32) (*Int, error) {
	mag, err := magnitude.FromRadixLE(ds, radix)
	if err != nil {
		return nil, ParseError.Wrap(err)
	}

	return new(Int).setNat(clampSign(sign), mag), nil
}
