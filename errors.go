package bigint

import "github.com/zeebo/errs"

var (
	// Error is the class of general errors.
	Error = errs.Class("bigint")

	// ParseError is the class of errors returned for malformed text or
	// digits.
	ParseError = errs.Class("bigint parse")

	// RangeError is the class of errors returned when a value does not fit
	// the requested fixed width type.
	RangeError = errs.Class("bigint range")

	// DomainError is the class of errors that operations panic with when
	// called outside of their domain (division by zero, negative
	// exponents, even roots of negative numbers).
	DomainError = errs.Class("bigint domain")

	// InvariantError is the class of errors that debug builds panic with
	// when a value is not canonical.
	InvariantError = errs.Class("bigint invariant")
)
