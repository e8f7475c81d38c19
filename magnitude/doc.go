// Package magnitude provides the unsigned arbitrary precision engine used by
// the signed integer type.
//
// A Nat is a little-endian sequence of machine words (limbs) without leading
// zero limbs. The zero value (nil) is the number zero. Functions in this
// package never modify their inputs unless documented otherwise (Incr and
// Decr operate in place) and always return normalized results.
//
// The heavy lifting (multiplication, long division, base conversion, modular
// exponentiation) is delegated to math/big which operates directly on the
// same limb representation.
package magnitude
