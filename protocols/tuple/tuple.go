// Package tuple provides a fixed-order composite group.Element: the direct
// product of N elements from the same underlying group, encoded as the
// flattened concatenation of each member's own encoding.
//
// It is the building block for every Sigma-protocol in this module whose
// commitment spans more than one group element (DLEQ, Pedersen-DLEQ,
// AND-composition): absorbing a tuple into a Codec is, by construction,
// exactly "absorb the flattened concatenation of the sub-commitments"
// (spec.md §8's AND-composition scenario).
package tuple

import (
	"fmt"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Elements is a fixed-length direct product of group elements.
type Elements []group.Element

// Encode returns the concatenation of each member's canonical encoding, in
// order.
func (t Elements) Encode() []byte {
	var out []byte
	for _, e := range t {
		out = append(out, e.Encode()...)
	}
	return out
}

// Add returns the component-wise sum of t and other.
func (t Elements) Add(other group.Element) group.Element {
	o := other.(Elements)
	out := make(Elements, len(t))
	for i := range t {
		out[i] = t[i].Add(o[i])
	}
	return out
}

// ScalarMult returns the component-wise scalar multiple of t by s.
func (t Elements) ScalarMult(s group.Scalar) group.Element {
	out := make(Elements, len(t))
	for i := range t {
		out[i] = t[i].ScalarMult(s)
	}
	return out
}

// Equal reports whether t and other are component-wise equal.
func (t Elements) Equal(other group.Element) bool {
	o, ok := other.(Elements)
	if !ok || len(o) != len(t) {
		return false
	}
	for i := range t {
		if !t[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// DecodeElements splits buf into n fixed-width chunks of elementLen bytes
// each and deserializes them with g, returning the resulting Elements tuple.
func DecodeElements(g group.Group, buf []byte, n, elementLen int) (Elements, error) {
	if len(buf) != n*elementLen {
		return nil, fmt.Errorf("tuple: buffer length does not match element count: %w", sigma.ErrMalformedProof)
	}
	out := make(Elements, n)
	for i := range out {
		e, err := g.DeserializeElement(buf[i*elementLen : (i+1)*elementLen])
		if err != nil {
			return nil, fmt.Errorf("tuple: decoding element %d: %w", i, sigma.ErrMalformedProof)
		}
		out[i] = e
	}
	return out, nil
}
