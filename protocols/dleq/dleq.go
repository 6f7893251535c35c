// Package dleq implements the discrete-log-equality Sigma-protocol: proof of
// knowledge of x such that (X = x·G) ∧ (Y = x·H), for two independent
// generators G, H.
package dleq

import (
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/protocols/tuple"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol proves knowledge of a shared discrete log across two generators.
type Protocol struct {
	Group      group.Group
	G, H       group.Element
	X, Y       group.Element
	protocolID [64]byte
	instance   []byte
}

// New constructs a DLEQ Protocol for the statement (X = x*G) ∧ (Y = x*H).
func New(g group.Group, gen, h, x, y group.Element, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{Group: g, G: gen, H: h, X: x, Y: y, protocolID: protocolID, instance: instance}
}

// Witness is the shared discrete log x.
type Witness struct {
	X group.Scalar
}

// Response is the shared proof scalar z = k + c*x.
type Response struct {
	Z group.Scalar
}

type proverState struct {
	k, x group.Scalar
}

func (p *Protocol) ProtocolID() [64]byte  { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte { return p.instance }
func (p *Protocol) CommitBytesLen() int   { return 2 * p.Group.ElementByteLength() }
func (p *Protocol) ResponseBytesLen() int { return p.Group.ScalarByteLength() }

func (p *Protocol) ProverCommit(witness any, rng io.Reader) (any, group.Element, error) {
	w := witness.(Witness)

	k, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	commitment := tuple.Elements{p.G.ScalarMult(k), p.H.ScalarMult(k)}
	return proverState{k: k, x: w.X}, commitment, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	return Response{Z: st.k.Add(st.x.Mul(challenge))}, nil
}

// Verifier checks z*G == A + c*X and z*H == B + c*Y.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	comm := commitment.(tuple.Elements)

	lhsA := p.G.ScalarMult(r.Z)
	rhsA := comm[0].Add(p.X.ScalarMult(challenge))

	lhsB := p.H.ScalarMult(r.Z)
	rhsB := comm[1].Add(p.Y.ScalarMult(challenge))

	return lhsA.Equal(rhsA) && lhsB.Equal(rhsB)
}

// SimulateCommitment reconstructs (A', B') = (z*G - c*X, z*H - c*Y).
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	negC := challenge.Negate()
	aPrime := p.G.ScalarMult(r.Z).Add(p.X.ScalarMult(negC))
	bPrime := p.H.ScalarMult(r.Z).Add(p.Y.ScalarMult(negC))
	return tuple.Elements{aPrime, bPrime}
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte {
	return commitment.(tuple.Elements).Encode()
}

func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte { return challenge.Encode() }

func (p *Protocol) SerializeResponse(response any) []byte {
	return response.(Response).Z.Encode()
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	return tuple.DecodeElements(p.Group, buf, 2, p.Group.ElementByteLength())
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	c, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("dleq: decoding challenge: %w", sigma.ErrMalformedProof)
	}
	return c, nil
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	z, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("dleq: decoding z: %w", sigma.ErrMalformedProof)
	}
	return Response{Z: z}, nil
}
