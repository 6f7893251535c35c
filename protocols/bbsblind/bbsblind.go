// Package bbsblind implements the three-message BBS blind-commitment
// Sigma-protocol: proof of knowledge of a blinding secret s and three
// blinded message scalars m1, m2, m3 such that
//
//	C = s·Q2 + m1·J1 + m2·J2 + m3·J3.
package bbsblind

import (
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol proves knowledge of a BBS blind-commitment opening.
type Protocol struct {
	Group              group.Group
	Q2, J1, J2, J3     group.Element
	C                  group.Element
	protocolID         [64]byte
	instance           []byte
}

// New constructs a BBS blind-commitment Protocol for
// C = s*Q2 + m1*J1 + m2*J2 + m3*J3.
func New(g group.Group, q2, j1, j2, j3, c group.Element, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{Group: g, Q2: q2, J1: j1, J2: j2, J3: j3, C: c, protocolID: protocolID, instance: instance}
}

// Witness is the blinding secret s and the three blinded message scalars.
type Witness struct {
	S, M1, M2, M3 group.Scalar
}

// Response is the four proof scalars (z_s, z_1, z_2, z_3).
type Response struct {
	Zs, Z1, Z2, Z3 group.Scalar
}

type proverState struct {
	ks, k1, k2, k3 group.Scalar
	s, m1, m2, m3  group.Scalar
}

func (p *Protocol) ProtocolID() [64]byte  { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte { return p.instance }
func (p *Protocol) CommitBytesLen() int   { return p.Group.ElementByteLength() }
func (p *Protocol) ResponseBytesLen() int { return 4 * p.Group.ScalarByteLength() }

func (p *Protocol) ProverCommit(witness any, rng io.Reader) (any, group.Element, error) {
	w := witness.(Witness)

	ks, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	k1, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	k2, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	k3, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	commitment := p.Q2.ScalarMult(ks).
		Add(p.J1.ScalarMult(k1)).
		Add(p.J2.ScalarMult(k2)).
		Add(p.J3.ScalarMult(k3))

	st := proverState{
		ks: ks, k1: k1, k2: k2, k3: k3,
		s: w.S, m1: w.M1, m2: w.M2, m3: w.M3,
	}
	return st, commitment, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	return Response{
		Zs: st.ks.Add(st.s.Mul(challenge)),
		Z1: st.k1.Add(st.m1.Mul(challenge)),
		Z2: st.k2.Add(st.m2.Mul(challenge)),
		Z3: st.k3.Add(st.m3.Mul(challenge)),
	}, nil
}

// Verifier checks z_s*Q2+z_1*J1+z_2*J2+z_3*J3 == A + c*C.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	lhs := p.Q2.ScalarMult(r.Zs).
		Add(p.J1.ScalarMult(r.Z1)).
		Add(p.J2.ScalarMult(r.Z2)).
		Add(p.J3.ScalarMult(r.Z3))
	rhs := commitment.Add(p.C.ScalarMult(challenge))
	return lhs.Equal(rhs)
}

// SimulateCommitment reconstructs A' = z_s*Q2+z_1*J1+z_2*J2+z_3*J3 - c*C.
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	negC := challenge.Negate()
	return p.Q2.ScalarMult(r.Zs).
		Add(p.J1.ScalarMult(r.Z1)).
		Add(p.J2.ScalarMult(r.Z2)).
		Add(p.J3.ScalarMult(r.Z3)).
		Add(p.C.ScalarMult(negC))
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte { return commitment.Encode() }
func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte    { return challenge.Encode() }

func (p *Protocol) SerializeResponse(response any) []byte {
	r := response.(Response)
	out := r.Zs.Encode()
	out = append(out, r.Z1.Encode()...)
	out = append(out, r.Z2.Encode()...)
	out = append(out, r.Z3.Encode()...)
	return out
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	e, err := p.Group.DeserializeElement(buf)
	if err != nil {
		return nil, fmt.Errorf("bbsblind: decoding commitment: %w", sigma.ErrMalformedProof)
	}
	return e, nil
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	c, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("bbsblind: decoding challenge: %w", sigma.ErrMalformedProof)
	}
	return c, nil
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	n := p.Group.ScalarByteLength()
	if len(buf) != 4*n {
		return nil, fmt.Errorf("bbsblind: response length does not match four scalars: %w", sigma.ErrMalformedProof)
	}

	scalars := make([]group.Scalar, 4)
	for i := range scalars {
		s, err := p.Group.DeserializeScalar(buf[i*n : (i+1)*n])
		if err != nil {
			return nil, fmt.Errorf("bbsblind: decoding scalar %d: %w", i, sigma.ErrMalformedProof)
		}
		scalars[i] = s
	}

	return Response{Zs: scalars[0], Z1: scalars[1], Z2: scalars[2], Z3: scalars[3]}, nil
}
