// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"crypto/sha3"
	"io"

	"github.com/sigma-rs/sigma-go/group"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Scalar returns a deterministic scalar in g drawn from the DRBG.
func (d *DRBG) Scalar(g group.Group) group.Scalar {
	s, err := g.RandomScalar(d.Reader())
	if err != nil {
		// Reader() is backed by an unbounded SHAKE128 stream; RandomScalar
		// can only fail on a short read, which cannot happen here.
		panic(err)
	}
	return s
}

// KeyPair returns a deterministic (secret scalar, public element) pair in g
// from the DRBG.
func (d *DRBG) KeyPair(g group.Group) (group.Scalar, group.Element) {
	x := d.Scalar(g)
	y := g.Generator().ScalarMult(x)
	return x, y
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Reader returns a pseudorandom reader seeded with a value from this DRBG.
func (d *DRBG) Reader() io.Reader {
	h := sha3.NewSHAKE128()
	_, _ = h.Write(d.Data(32))
	return h
}
