// Package integer encodes arbitrary precision integers as BSV data blocks.
//
// Signed values are stored zigzag encoded: the magnitude shifted left by one
// with the low bit set for negative values. Unsigned values store the
// magnitude directly. The resulting big-endian bytes are written with the
// shortest control block able to hold them, so small values fit in a single
// byte.
package integer
