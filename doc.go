// Package bigint implements arbitrary precision signed integers.
//
// An Int is a sign (Negative, Zero or Positive) paired with an unsigned
// magnitude from package magnitude. Zero has exactly one representation: a
// Zero sign with an empty magnitude. The zero value of an Int is ready to use
// and represents 0.
//
// Operations follow the conventions of math/big. They are methods of the form
//
//	func (z *Int) Op(x, y *Int) *Int
//
// that set the receiver to the result and return it. The receiver may be one
// of the operands. Int values must not be shallow copied (e.g. a := *b); use
// Set or Clone.
//
// Bitwise operations (And, Or, Xor, Not, AndNot) behave as if the operands
// were stored in infinite precision two's complement. Right shifts round
// toward negative infinity. Division comes in truncating (DivRem, Quo, Rem),
// floor (DivFloor, ModFloor, DivModFloor) and ceiling (DivCeil) variants.
//
// Building with the bigint_debug tag enables invariant checks on every
// result.
package bigint
