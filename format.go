package bigint

import (
	"fmt"
	"strings"

	"github.com/calebcase/bigint/magnitude"
)

// Format implements fmt.Formatter. It accepts the verbs 'b' (binary), 'o'
// (octal), 'd' (decimal), 'x' and 'X' (hexadecimal) as well as 's' and 'v'
// (decimal). The '+' flag forces a sign, the '#' flag adds a base prefix and
// width is honored with the '-' and '0' flags.
func (x *Int) Format(s fmt.State, ch rune) {
	var radix int
	var prefix string

	switch ch {
	case 'b':
		radix, prefix = 2, "0b"
	case 'o':
		radix, prefix = 8, "0"
	case 'd', 's', 'v':
		radix = 10
	case 'x':
		radix, prefix = 16, "0x"
	case 'X':
		radix, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	var sign string
	switch {
	case x.sign == Negative:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	if !s.Flag('#') {
		prefix = ""
	}

	digits := magnitude.Text(x.mag, radix)
	if ch == 'X' {
		digits = strings.ToUpper(digits)
	}

	body := len(sign) + len(prefix) + len(digits)

	width, ok := s.Width()
	if !ok || width <= body {
		fmt.Fprint(s, sign, prefix, digits)
		return
	}

	pad := width - body

	switch {
	case s.Flag('-'):
		fmt.Fprint(s, sign, prefix, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, sign, prefix, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad), sign, prefix, digits)
	}
}
