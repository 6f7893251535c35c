// Package and implements the AND-composition combinator: given N
// independent Sigma-protocols over the same group, it produces a single
// Sigma-protocol proving all N statements under one shared challenge.
//
// The combinator implements sigma.Protocol itself, so it drives through the
// same NISigmaProtocol.Prove/Verify machinery as any leaf protocol: its own
// commitment is the flattened concatenation of each sub-protocol's
// commitment (via tuple.Elements), and a single challenge is squeezed once
// that concatenation has been absorbed.
package and

import (
	"errors"
	"fmt"
	"io"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/protocols/tuple"
	"github.com/sigma-rs/sigma-go/sigma"
)

// Protocol is the AND-composition of a fixed, ordered list of sub-protocols
// sharing a common group.
type Protocol struct {
	Group      group.Group
	Subs       []sigma.Protocol
	protocolID [64]byte
	instance   []byte
}

// New constructs an AND-composition of subs, all sharing g.
func New(g group.Group, subs []sigma.Protocol, protocolID [64]byte, instance []byte) *Protocol {
	return &Protocol{Group: g, Subs: subs, protocolID: protocolID, instance: instance}
}

// Witness is the ordered list of each sub-protocol's own witness.
type Witness struct {
	Sub []any
}

// Response is the ordered list of each sub-protocol's own response.
type Response struct {
	Sub []any
}

type proverState struct {
	sub []any
}

func (p *Protocol) ProtocolID() [64]byte  { return p.protocolID }
func (p *Protocol) InstanceLabel() []byte { return p.instance }

func (p *Protocol) CommitBytesLen() int {
	total := 0
	for _, s := range p.Subs {
		total += s.CommitBytesLen()
	}
	return total
}

func (p *Protocol) ResponseBytesLen() int {
	total := 0
	for _, s := range p.Subs {
		total += s.ResponseBytesLen()
	}
	return total
}

func (p *Protocol) ProverCommit(witness any, rng io.Reader) (any, group.Element, error) {
	w := witness.(Witness)
	if len(w.Sub) != len(p.Subs) {
		return nil, nil, errors.New("and: witness count does not match sub-protocol count")
	}

	states := make([]any, len(p.Subs))
	commitments := make(tuple.Elements, len(p.Subs))

	for i, sub := range p.Subs {
		st, commitment, err := sub.ProverCommit(w.Sub[i], rng)
		if err != nil {
			return nil, nil, err
		}
		states[i] = st
		commitments[i] = commitment
	}

	return proverState{sub: states}, commitments, nil
}

func (p *Protocol) ProverResponse(state any, challenge group.Scalar) (any, error) {
	st := state.(proverState)
	responses := make([]any, len(p.Subs))

	for i, sub := range p.Subs {
		r, err := sub.ProverResponse(st.sub[i], challenge)
		if err != nil {
			return nil, err
		}
		responses[i] = r
	}

	return Response{Sub: responses}, nil
}

// Verifier checks every sub-protocol's verification equation against the
// shared challenge, ANDing the results.
func (p *Protocol) Verifier(commitment group.Element, challenge group.Scalar, response any) bool {
	r := response.(Response)
	comm := commitment.(tuple.Elements)

	if len(comm) != len(p.Subs) || len(r.Sub) != len(p.Subs) {
		return false
	}

	for i, sub := range p.Subs {
		if !sub.Verifier(comm[i], challenge, r.Sub[i]) {
			return false
		}
	}
	return true
}

// SimulateCommitment reconstructs each sub-protocol's commitment from its
// own response under the shared challenge.
func (p *Protocol) SimulateCommitment(response any, challenge group.Scalar) group.Element {
	r := response.(Response)
	out := make(tuple.Elements, len(p.Subs))

	for i, sub := range p.Subs {
		out[i] = sub.SimulateCommitment(r.Sub[i], challenge)
	}
	return out
}

func (p *Protocol) SerializeCommitment(commitment group.Element) []byte {
	comm := commitment.(tuple.Elements)
	var out []byte
	for i, sub := range p.Subs {
		out = append(out, sub.SerializeCommitment(comm[i])...)
	}
	return out
}

func (p *Protocol) SerializeChallenge(challenge group.Scalar) []byte {
	return p.Subs[0].SerializeChallenge(challenge)
}

func (p *Protocol) SerializeResponse(response any) []byte {
	r := response.(Response)
	var out []byte
	for i, sub := range p.Subs {
		out = append(out, sub.SerializeResponse(r.Sub[i])...)
	}
	return out
}

func (p *Protocol) DeserializeCommitment(buf []byte) (group.Element, error) {
	out := make(tuple.Elements, len(p.Subs))
	for i, sub := range p.Subs {
		n := sub.CommitBytesLen()
		if len(buf) < n {
			return nil, fmt.Errorf("and: commitment buffer too short: %w", sigma.ErrMalformedProof)
		}
		e, err := sub.DeserializeCommitment(buf[:n])
		if err != nil {
			return nil, fmt.Errorf("and: decoding sub-commitment %d: %w", i, sigma.ErrMalformedProof)
		}
		out[i] = e
		buf = buf[n:]
	}
	if len(buf) != 0 {
		return nil, fmt.Errorf("and: commitment buffer has trailing bytes: %w", sigma.ErrMalformedProof)
	}
	return out, nil
}

func (p *Protocol) DeserializeChallenge(buf []byte) (group.Scalar, error) {
	return p.Subs[0].DeserializeChallenge(buf)
}

func (p *Protocol) DeserializeResponse(buf []byte) (any, error) {
	responses := make([]any, len(p.Subs))
	for i, sub := range p.Subs {
		n := sub.ResponseBytesLen()
		if len(buf) < n {
			return nil, fmt.Errorf("and: response buffer too short: %w", sigma.ErrMalformedProof)
		}
		r, err := sub.DeserializeResponse(buf[:n])
		if err != nil {
			return nil, fmt.Errorf("and: decoding sub-response %d: %w", i, sigma.ErrMalformedProof)
		}
		responses[i] = r
		buf = buf[n:]
	}
	if len(buf) != 0 {
		return nil, fmt.Errorf("and: response buffer has trailing bytes: %w", sigma.ErrMalformedProof)
	}
	return Response{Sub: responses}, nil
}
