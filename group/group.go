// Package group defines the prime-order group contract the codec and
// sigma packages are written against. Concrete groups live in subpackages
// (group/p256, group/ristretto); this package is pure interface.
package group

import "io"

// Element is a group element (a Sigma-protocol commitment or public key
// component).
type Element interface {
	// Encode returns the canonical byte encoding absorbed by a Codec. For a
	// short-Weierstrass curve this is sign_tag || I2OSP(x, L_coord); for a
	// group with a native canonical compressed form (e.g. Ristretto) it is
	// that form.
	Encode() []byte

	// Add returns the sum of the receiver and other.
	Add(other Element) Element

	// ScalarMult returns the receiver multiplied by s.
	ScalarMult(s Scalar) Element

	// Equal reports whether the receiver and other encode the same point.
	Equal(other Element) bool
}

// Scalar is a field element of a group's scalar field.
type Scalar interface {
	// Encode returns the big-endian, fixed-length canonical encoding of the
	// scalar (L_s bytes).
	Encode() []byte

	Add(other Scalar) Scalar
	Sub(other Scalar) Scalar
	Mul(other Scalar) Scalar
	Negate() Scalar
	Equal(other Scalar) bool
}

// Group is a prime-order group description: scalar field order q, element
// serialization length L_G, and scalar byte length L_s.
type Group interface {
	// Name identifies the group for domain-separation and error messages.
	Name() string

	// ScalarByteLength returns L_s = ceil(log2(q)/8).
	ScalarByteLength() int

	// ElementByteLength returns the canonical encoded length of an element.
	ElementByteLength() int

	// ChallengeSampleLen returns the number of bytes a Codec should squeeze
	// to sample one unbiased scalar. The spec's generic formula is
	// ScalarByteLength()+16; a group may widen this if its own scalar
	// construction requires a specific oversample width (see
	// group/ristretto, which is pinned to ristretto255's 64-byte wide
	// reduction).
	ChallengeSampleLen() int

	// Generator returns the group's distinguished base point.
	Generator() Element

	// RandomScalar draws a uniformly random nonzero scalar from rng.
	RandomScalar(rng io.Reader) (Scalar, error)

	// ReduceWide interprets buf (ChallengeSampleLen bytes) as an unsigned
	// integer and reduces it modulo q, returning the result as a Scalar.
	ReduceWide(buf []byte) Scalar

	// DeserializeElement parses an encoded element, failing on malformed or
	// off-curve input.
	DeserializeElement(buf []byte) (Element, error)

	// DeserializeScalar parses an encoded scalar, failing on malformed input
	// or a value >= q.
	DeserializeScalar(buf []byte) (Scalar, error)
}
