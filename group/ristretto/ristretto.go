// Package ristretto adapts github.com/gtank/ristretto255 — the scalar and
// element library the teacher's schemes (sig, vrf, oprf) are built on — to
// the group.Group contract.
package ristretto

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/sigma-rs/sigma-go/group"
)

// scalarByteLength is the canonical encoded length of a ristretto255 scalar.
const scalarByteLength = 32

// elementByteLength is the canonical encoded length of a ristretto255
// element.
const elementByteLength = 32

// wideReductionLen is the input width ristretto255.Scalar.SetUniformBytes
// requires. It is wider than the generic ScalarByteLength()+16 formula in
// the codec spec, but that formula is a floor, not a ceiling: 64 bytes of
// input against a ~252-bit field gives a far smaller statistical bias than
// the 48-byte oversample the generic formula would otherwise pick, and
// ristretto255's API only accepts exactly 64 bytes.
const wideReductionLen = 64

// Group is the ristretto255 group.Group implementation.
var Group group.Group = ristrettoGroup{}

type ristrettoGroup struct{}

func (ristrettoGroup) Name() string            { return "ristretto255" }
func (ristrettoGroup) ScalarByteLength() int    { return scalarByteLength }
func (ristrettoGroup) ElementByteLength() int   { return elementByteLength }
func (ristrettoGroup) ChallengeSampleLen() int  { return wideReductionLen }
func (ristrettoGroup) Generator() group.Element { return element{ristretto255.NewGeneratorElement()} }

func (ristrettoGroup) RandomScalar(rng io.Reader) (group.Scalar, error) {
	var buf [wideReductionLen]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return nil, err
	}
	s, err := ristretto255.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return nil, err
	}
	return scalar{s}, nil
}

func (ristrettoGroup) ReduceWide(buf []byte) group.Scalar {
	if len(buf) != wideReductionLen {
		panic("ristretto: ReduceWide requires exactly 64 bytes")
	}
	s, err := ristretto255.NewScalar().SetUniformBytes(buf)
	if err != nil {
		// SetUniformBytes only fails on wrong input length, which is
		// checked above.
		panic(err)
	}
	return scalar{s}
}

func (ristrettoGroup) DeserializeElement(buf []byte) (group.Element, error) {
	if len(buf) != elementByteLength {
		return nil, errors.New("ristretto: invalid element length")
	}
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(buf)
	if err != nil {
		return nil, err
	}
	return element{e}, nil
}

func (ristrettoGroup) DeserializeScalar(buf []byte) (group.Scalar, error) {
	if len(buf) != scalarByteLength {
		return nil, errors.New("ristretto: invalid scalar length")
	}
	s, err := ristretto255.NewScalar().SetCanonicalBytes(buf)
	if err != nil {
		return nil, err
	}
	return scalar{s}, nil
}

type element struct{ e *ristretto255.Element }

func (v element) Encode() []byte { return v.e.Bytes() }

func (v element) Add(other group.Element) group.Element {
	o := other.(element)
	return element{ristretto255.NewIdentityElement().Add(v.e, o.e)}
}

func (v element) ScalarMult(s group.Scalar) group.Element {
	sc := s.(scalar)
	return element{ristretto255.NewIdentityElement().ScalarMult(sc.s, v.e)}
}

func (v element) Equal(other group.Element) bool {
	o := other.(element)
	return v.e.Equal(o.e) == 1
}

type scalar struct{ s *ristretto255.Scalar }

func (s scalar) Encode() []byte { return s.s.Bytes() }

func (s scalar) Add(other group.Scalar) group.Scalar {
	o := other.(scalar)
	return scalar{ristretto255.NewScalar().Add(s.s, o.s)}
}

func (s scalar) Sub(other group.Scalar) group.Scalar {
	o := other.(scalar)
	return scalar{ristretto255.NewScalar().Subtract(s.s, o.s)}
}

func (s scalar) Mul(other group.Scalar) group.Scalar {
	o := other.(scalar)
	return scalar{ristretto255.NewScalar().Multiply(s.s, o.s)}
}

func (s scalar) Negate() group.Scalar {
	return scalar{ristretto255.NewScalar().Negate(s.s)}
}

func (s scalar) Equal(other group.Scalar) bool {
	o := other.(scalar)
	return s.s.Equal(o.s) == 1
}
