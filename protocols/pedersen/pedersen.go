// Package pedersen implements the Pedersen-commitment opening Sigma-protocol:
// proof of knowledge of (x, r) such that C = x·G + r·H.
package pedersen

import (
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol proves knowledge of an opening of a Pedersen commitment C.
type Protocol struct {
	Group      group.Group
	G, H       group.Element
	C          group.Element
	protocolID [64]byte
	instance   []byte
}

// New constructs a Pedersen-opening Protocol for C = x*G + r*H.
func New(g group.Group, gen, h, c group.Element, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{Group: g, G: gen, H: h, C: c, protocolID: protocolID, instance: instance}
}

// Witness is the opening (x, r).
type Witness struct {
	X, R group.Scalar
}

// Response is the pair of proof scalars (z_x, z_r).
type Response struct {
	Zx, Zr group.Scalar
}

type proverState struct {
	k1, k2 group.Scalar
	x, r   group.Scalar
}

func (p *Protocol) ProtocolID() [64]byte  { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte { return p.instance }
func (p *Protocol) CommitBytesLen() int   { return p.Group.ElementByteLength() }
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

	commitment := p.G.ScalarMult(k1).Add(p.H.ScalarMult(k2))
	return proverState{k1: k1, k2: k2, x: w.X, r: w.R}, commitment, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	return Response{
		Zx: st.k1.Add(st.x.Mul(challenge)),
		Zr: st.k2.Add(st.r.Mul(challenge)),
	}, nil
}

// Verifier checks z_x*G + z_r*H == A + c*C.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	lhs := p.G.ScalarMult(r.Zx).Add(p.H.ScalarMult(r.Zr))
	rhs := commitment.Add(p.C.ScalarMult(challenge))
	return lhs.Equal(rhs)
}

// SimulateCommitment reconstructs A' = z_x*G + z_r*H - c*C.
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	return p.G.ScalarMult(r.Zx).Add(p.H.ScalarMult(r.Zr)).Add(p.C.ScalarMult(challenge.Negate()))
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte { return commitment.Encode() }
func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte    { return challenge.Encode() }

func (p *Protocol) SerializeResponse(response any) []byte {
	r := response.(Response)
	return append(r.Zx.Encode(), r.Zr.Encode()...)
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	e, err := p.Group.DeserializeElement(buf)
	if err != nil {
		return nil, fmt.Errorf("pedersen: decoding commitment: %w", sigma.ErrMalformedProof)
	}
	return e, nil
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	c, err := p.Group.DeserializeScalar(buf)
	if err != nil {
		return nil, fmt.Errorf("pedersen: decoding challenge: %w", sigma.ErrMalformedProof)
	}
	return c, nil
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	n := p.Group.ScalarByteLength()
	if len(buf) != 2*n {
		return nil, fmt.Errorf("pedersen: response length does not match two scalars: %w", sigma.ErrMalformedProof)
	}
	zx, err := p.Group.DeserializeScalar(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("pedersen: decoding zx: %w", sigma.ErrMalformedProof)
	}
	zr, err := p.Group.DeserializeScalar(buf[n:])
	if err != nil {
		return nil, fmt.Errorf("pedersen: decoding zr: %w", sigma.ErrMalformedProof)
	}
	return Response{Zx: zx, Zr: zr}, nil
}
