// Package duplex implements a Keccak-f[1600] duplex sponge in overwrite
// mode: absorb replaces rate bytes rather than XORing into them, and the
// phase switch between absorbing and squeezing is handled entirely through
// index bookkeeping rather than an explicit padding byte.
//
// This is a deliberate departure from the classical SHA-3/SHAKE sponge and
// must be preserved exactly for interoperability with other Fiat-Shamir
// transcript implementations built on the same construction.
package duplex

import "github.com/sigma-rs/sigma-go/hazmat/keccak"

const (
	// Rate is the number of state bytes directly readable/writable between
	// permutations.
	Rate = 136

	// Capacity is the non-rate portion of the state.
	Capacity = 200 - Rate
)

// Sponge is a Keccak-f[1600] duplex sponge in overwrite mode.
//
// The zero value is not valid; construct one with Init.
type Sponge struct {
	state        [200]byte
	absorbIndex  int
	squeezeIndex int
}

// Init resets the sponge, zeroing the state and installing iv at the start
// of the capacity region (state bytes [Rate, Rate+32)).
func Init(iv [32]byte) *Sponge {
	s := &Sponge{}
	copy(s.state[Rate:], iv[:])
	s.absorbIndex = 0
	s.squeezeIndex = Rate
	return s
}

// Absorb overwrites rate bytes of the state with input, permuting whenever
// the rate region fills. Absorb always invalidates any pending squeeze
// output: a subsequent Squeeze call will permute before producing bytes.
func (s *Sponge) Absorb(input []byte) {
	s.squeezeIndex = Rate

	for len(input) > 0 {
		if s.absorbIndex == Rate {
			keccak.Permute(&s.state)
			s.absorbIndex = 0
		}

		k := min(Rate-s.absorbIndex, len(input))
		copy(s.state[s.absorbIndex:s.absorbIndex+k], input[:k])

		s.absorbIndex += k
		input = input[k:]
	}
}

// Squeeze returns length fresh bytes from the sponge, permuting whenever the
// rate region is exhausted. A zero-length squeeze is a no-op: it neither
// permutes nor alters any index.
//
// Squeeze always resets the absorb cursor to zero on entry. This is
// load-bearing for the absorb/squeeze phase switch: it ensures a later
// Absorb call begins a fresh block only after the next permutation, giving
// deterministic domain separation between the two phases without a pad byte.
func (s *Sponge) Squeeze(length int) []byte {
	if length == 0 {
		return nil
	}

	s.absorbIndex = 0

	out := make([]byte, 0, length)
	for length > 0 {
		if s.squeezeIndex == Rate {
			keccak.Permute(&s.state)
			s.squeezeIndex = 0
			s.absorbIndex = 0
		}

		k := min(Rate-s.squeezeIndex, length)
		out = append(out, s.state[s.squeezeIndex:s.squeezeIndex+k]...)

		s.squeezeIndex += k
		length -= k
	}

	return out
}
