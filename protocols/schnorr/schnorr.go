// Package schnorr implements the discrete-log Sigma-protocol: proof of
// knowledge of x such that X = x·G, the reference example for sigma.Protocol.
package schnorr

import (
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol proves knowledge of the discrete log of Public base Generator.
type Protocol struct {
	Group      group.Group
	Generator  group.Element
	Public     group.Element
	protocolID [64]byte
	instance   []byte
}

// New constructs a discrete-log Protocol for the statement Public =
// x*Generator, identified by protocolID and instance for domain separation.
func New(g group.Group, generator, public group.Element, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{Group: g, Generator: generator, Public: public, protocolID: protocolID, instance: instance}
}

// Witness is the discrete log x.
type Witness struct {
	X group.Scalar
}

// Response is the Schnorr proof scalar z = k + c*x.
type Response struct {
	Z group.Scalar
}

type proverState struct {
	k group.Scalar
	x group.Scalar
}

func (p *Protocol) ProtocolID() [64]byte    { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte   { return p.instance }
func (p *Protocol) CommitBytesLen() int     { return p.Group.ElementByteLength() }
func (p *Protocol) ResponseBytesLen() int   { return p.Group.ScalarByteLength() }

func (p *Protocol) ProverCommit(witness any, rng io.Reader) (any, group.Element, error) {
	w := witness.(Witness)

	k, err := p.Group.RandomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	commitment := p.Generator.ScalarMult(k)
	return proverState{k: k, x: w.X}, commitment, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	return Response{Z: st.k.Add(st.x.Mul(challenge))}, nil
}

// Verifier checks z*G == A + c*X.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	lhs := p.Generator.ScalarMult(r.Z)
	rhs := commitment.Add(p.Public.ScalarMult(challenge))
	return lhs.Equal(rhs)
}

// SimulateCommitment reconstructs A' = z*G - c*X, the algebraic inverse of
// Verifier's equation.
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	return p.Generator.ScalarMult(r.Z).Add(p.Public.ScalarMult(challenge.Negate()))
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte { return commitment.Encode() }
func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte    { return challenge.Encode() }
func (p *Protocol) SerializeResponse(response any) []byte {
	return response.(Response).Z.Encode()
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	e, err := p.Group.DeserializeElement(buf)
	if err != nil {
		return nil, fmt.Errorf("schnorr: decoding commitment: %w", sigma.ErrMalformedProof)
	}
	return e, nil
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	c, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("schnorr: decoding challenge: %w", sigma.ErrMalformedProof)
	}
	return c, nil
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	z, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("schnorr: decoding z: %w", sigma.ErrMalformedProof)
	}
	return Response{Z: z}, nil
}
