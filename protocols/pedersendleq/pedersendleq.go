// Package pedersendleq implements a Pedersen-equality Sigma-protocol: proof
// of knowledge of (x, r) such that C1 = x·G1 + r·H1 and C2 = x·G2 + r·H2,
// for two independent generator pairs sharing the same opening.
package pedersendleq

import (
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/protocols/tuple"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol proves a shared Pedersen opening across two generator pairs.
type Protocol struct {
	Group          group.Group
	G1, H1, C1     group.Element
	G2, H2, C2     group.Element
	protocolID     [64]byte
	instance       []byte
}

// New constructs a Pedersen-equality Protocol for
// (C1 = x*G1 + r*H1) ∧ (C2 = x*G2 + r*H2).
func New(g group.Group, g1, h1, c1, g2, h2, c2 group.Element, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{
		Group: g,
		G1: g1, H1: h1, C1: c1,
		G2: g2, H2: h2, C2: c2,
		protocolID: protocolID, instance: instance,
	}
}

// Witness is the shared opening (x, r).
type Witness struct {
	X, R group.Scalar
}

// Response is the shared pair of proof scalars (z_x, z_r).
type Response struct {
	Zx, Zr group.Scalar
}

type proverState struct {
	k1, k2 group.Scalar
	x, r   group.Scalar
}

func (p *Protocol) ProtocolID() [64]byte  { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte { return p.instance }
func (p *Protocol) CommitBytesLen() int   { return 2 * p.Group.ElementByteLength() }
func (p *Protocol) ResponseBytesLen() int { return 2 * p.Group.ScalarByteLength() }

func (p *Protocol) ProverCommit(witness any, rng io.Reader) (any, group.Element, error) {
	w := witness.(Witness)

	k1, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	k2, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	a1 := p.G1.ScalarMult(k1).Add(p.H1.ScalarMult(k2))
	a2 := p.G2.ScalarMult(k1).Add(p.H2.ScalarMult(k2))

	return proverState{k1: k1, k2: k2, x: w.X, r: w.R}, tuple.Elements{a1, a2}, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	return Response{
		Zx: st.k1.Add(st.x.Mul(challenge)),
		Zr: st.k2.Add(st.r.Mul(challenge)),
	}, nil
}

// Verifier checks both z_x*G1+z_r*H1 == A1+c*C1 and z_x*G2+z_r*H2 == A2+c*C2.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	comm := commitment.(tuple.Elements)

	lhs1 := p.G1.ScalarMult(r.Zx).Add(p.H1.ScalarMult(r.Zr))
	rhs1 := comm[0].Add(p.C1.ScalarMult(challenge))

	lhs2 := p.G2.ScalarMult(r.Zx).Add(p.H2.ScalarMult(r.Zr))
	rhs2 := comm[1].Add(p.C2.ScalarMult(challenge))

	return lhs1.Equal(rhs1) && lhs2.Equal(rhs2)
}

// SimulateCommitment reconstructs (A1', A2') as the algebraic inverse of
// Verifier's two equations.
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	negC := challenge.Negate()

	a1 := p.G1.ScalarMult(r.Zx).Add(p.H1.ScalarMult(r.Zr)).Add(p.C1.ScalarMult(negC))
	a2 := p.G2.ScalarMult(r.Zx).Add(p.H2.ScalarMult(r.Zr)).Add(p.C2.ScalarMult(negC))

	return tuple.Elements{a1, a2}
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte {
	return commitment.(tuple.Elements).Encode()
}

func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte { return challenge.Encode() }

func (p *Protocol) SerializeResponse(response any) []byte {
	r := response.(Response)
	return append(r.Zx.Encode(), r.Zr.Encode()...)
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	return tuple.DecodeElements(p.Group, buf, 2, p.Group.ElementByteLength())
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	c, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("pedersendleq: decoding challenge: %w", sigma.ErrMalformedProof)
	}
	return c, nil
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	n := p.Group.ScalarByteLength()
	if len(buf) != 2*n {
		return nil, fmt.Errorf("pedersendleq: response length does not match two scalars: %w", sigma.ErrMalformedProof)
	}
	zx, err := p.Group.DeserializeScalar(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("pedersendleq: decoding zx: %w", sigma.ErrMalformedProof)
	}
	zr, err := p.Group.DeserializeScalar(buf[n:])
	if err != nil {
		return nil, fmt.Errorf("pedersendleq: decoding zr: %w", sigma.ErrMalformedProof)
	}
	return Response{Zx: zx, Zr: zr}, nil
}
