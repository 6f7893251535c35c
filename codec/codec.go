// Package codec maps prover-domain objects (group elements, field scalars)
// to and from a duplex sponge's absorb/squeeze I/O, sampling scalars without
// modular bias.
package codec

import (
	"github.com/sigma-rs/sigma-go/duplex"
	"github.com/sigma-rs/sigma-go/group"
)

// Codec is a byte-oriented encoder/decoder over a prime-order group, backed
// by a duplex sponge. A Codec exclusively owns its sponge.
type Codec struct {
	sponge *duplex.Sponge
	group  group.Group
}

// New constructs a Codec over the given group and sponge. The sponge should
// already be initialized (see sigma.DeriveIV) before being passed here.
func New(g group.Group, sponge *duplex.Sponge) *Codec {
	return &Codec{sponge: sponge, group: g}
}

// AbsorbLabel absorbs a length-prefixed label, used by callers (e.g. the
// sigma package) binding the instance_label into the transcript at codec
// init time rather than into the IV.
func (c *Codec) AbsorbLabel(label []byte) {
	c.absorbLengthPrefixed(label)
}

// ProverMessage serializes each element to its canonical encoding and
// absorbs the concatenation into the sponge.
func (c *Codec) ProverMessage(elements ...group.Element) {
	for _, e := range elements {
		c.sponge.Absorb(e.Encode())
	}
}

// VerifierChallenge squeezes ChallengeSampleLen uniform bytes and reduces
// them modulo the group order, yielding a scalar without modular bias.
func (c *Codec) VerifierChallenge() group.Scalar {
	buf := c.sponge.Squeeze(c.group.ChallengeSampleLen())
	return c.group.ReduceWide(buf)
}

// VerifierChallenges returns n independent challenge scalars, each from a
// fresh squeeze-and-reduce operation.
func (c *Codec) VerifierChallenges(n int) []group.Scalar {
	out := make([]group.Scalar, n)
	for i := range out {
		out[i] = c.VerifierChallenge()
	}
	return out
}

// absorbLengthPrefixed absorbs I2OSP(len(data), 4) || data, used for
// identifier binding where boundary confusion between adjacent fields must
// be prevented.
func (c *Codec) absorbLengthPrefixed(data []byte) {
	var lenBuf [4]byte
	lenBuf[0] = byte(len(data) >> 24)
	lenBuf[1] = byte(len(data) >> 16)
	lenBuf[2] = byte(len(data) >> 8)
	lenBuf[3] = byte(len(data))
	c.sponge.Absorb(lenBuf[:])
	c.sponge.Absorb(data)
}
