// Package keccak implements the Keccak-f[1600] permutation, the full
// 24-round member of the Keccak-p family underlying SHA-3 and SHAKE.
//
// This is deliberately the full-round permutation, not the reduced 12-round
// Keccak-p[1600,12] used by lighter-weight sponge constructions: the
// overwrite-mode duplex this package feeds (see package duplex) is pinned to
// interoperate with other Fiat-Shamir implementations built on the standard
// permutation, so round count is part of the wire contract and must not be
// tuned for speed.
package keccak

import "encoding/binary"

// roundConstants are the iota step constants for Keccak-f[1600]'s 24 rounds.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets[x][y] is the rho-step rotation amount for lane (x, y).
var rotationOffsets = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// Permute applies the Keccak-f[1600] permutation to state in place.
//
// state is laid out per the Keccak specification: lane (x, y) at bit i lives
// at byte 8*(5*y+x) + i/8, little-endian within the lane. The permutation
// takes no input padding; callers own the sponge's absorb/squeeze framing.
func Permute(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[8*i:])
	}

	f1600(&a)

	for i := range a {
		binary.LittleEndian.PutUint64(state[8*i:], a[i])
	}
}

// f1600 runs the 24-round theta-rho-pi-chi-iota permutation over lanes
// addressed as a[x+5*y].
func f1600(a *[25]uint64) {
	var b [25]uint64
	var c, d [5]uint64

	for round := range roundConstants {
		// Theta
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := range 5 {
			for y := range 5 {
				a[x+5*y] ^= d[x]
			}
		}

		// Rho and pi
		for x := range 5 {
			for y := range 5 {
				newX := y
				newY := (2*x + 3*y) % 5
				b[newX+5*newY] = rotl64(a[x+5*y], rotationOffsets[x][y])
			}
		}

		// Chi
		for x := range 5 {
			for y := range 5 {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// Iota
		a[0] ^= roundConstants[round]
	}
}

func rotl64(x uint64, n uint) uint64 {
	return x<<n | x>>(64-n)
}
