//go:build !bigint_debug

package bigint

const debugInvariants = false
