// Package sigma implements the Fiat-Shamir transformation: it binds a
// Sigma-protocol, a codec, and a duplex sponge into non-interactive proofs
// in both compact (challenge, response) and batchable (commitment, response)
// wire formats.
package sigma

import (
	"errors"
	"io"

	"github.com/sigma-rs/sigma-go/codec"
	"github.com/sigma-rs/sigma-go/duplex"
	"github.com/sigma-rs/sigma-go/group"
)

// ErrInternalConsistency is the panic value raised when a prover's own
// self-check (Verifier(A, c, z)) fails after ProverResponse. This indicates
// a bug in the Sigma-protocol implementation or its RNG, not adversarial
// input, so it is a hard failure rather than a returned error.
var ErrInternalConsistency = errors.New("sigma: prover self-check failed; protocol or RNG bug")

// ErrMalformedProof is the sentinel a Protocol's Deserialize* methods wrap
// (via fmt.Errorf("...: %w", ErrMalformedProof)) when handed proof bytes
// that cannot be decoded — wrong length, off-curve, or out-of-range. Callers
// that need to distinguish "decode failed" from other construction errors
// can test for it with errors.Is. It is never returned by Verify/
// VerifyBatchable themselves: those collapse every verification-time
// failure, decode or otherwise, to a plain `false`.
var ErrMalformedProof = errors.New("sigma: malformed proof")

// Protocol is the external collaborator contract a concrete Sigma-protocol
// (Schnorr, DLEQ, Pedersen, an AND-composition, ...) must satisfy to be
// driven through the Fiat-Shamir transformation.
//
// ProtocolID is a [64]byte array rather than a length-checked []byte: fixing
// the width in the type system removes the ProtocolIdLength runtime check
// spec.md's error taxonomy otherwise requires.
type Protocol interface {
	ProtocolID() [64]byte
	InstanceLabel() []byte
	CommitBytesLen() int
	ResponseBytesLen() int

	ProverCommit(witness any, rng io.Reader) (proverState any, commitment group.Element, err error)
	ProverResponse(proverState any, challenge group.Scalar) (response any, err error)
	Verifier(commitment group.Element, challenge group.Scalar, response any) bool
	SimulateCommitment(response any, challenge group.Scalar) group.Element

	SerializeCommitment(commitment group.Element) []byte
	SerializeChallenge(challenge group.Scalar) []byte
	SerializeResponse(response any) []byte

	DeserializeCommitment(buf []byte) (group.Element, error)
	DeserializeChallenge(buf []byte) (group.Scalar, error)
	DeserializeResponse(buf []byte) (any, error)
}

// tagSet is the optional tagged-wire-format configuration (spec.md §9 open
// question 2). The untagged (IETF draft) form is the default; WithTag opts
// a given NISigmaProtocol into the tagged alternative.
type tagSet struct {
	compact, batchable byte
}

// Option configures a NISigmaProtocol at construction time.
type Option func(*NISigmaProtocol)

// Default tag bytes for the tagged wire-format alternative.
const (
	TagCompact   byte = 0xAA
	TagBatchable byte = 0xBB
)

// WithTag opts the instance into the tagged wire format, prepending compact
// and batchable one-byte type tags to each respective proof. A given
// instance is tagged or untagged for its whole lifetime; mixing is a
// protocol change per spec.md §4.4 and is not supported by this type.
func WithTag(compact, batchable byte) Option {
	return func(n *NISigmaProtocol) {
		n.tag = &tagSet{compact: compact, batchable: batchable}
	}
}

// NISigmaProtocol is the Fiat-Shamir glue parameterized by a Protocol and a
// group.Group. It is not safe for concurrent use: each logical prove/verify
// call must own an instance exclusively (spec.md §5).
type NISigmaProtocol struct {
	proto Protocol
	group group.Group
	tag   *tagSet
}

// New constructs a NISigmaProtocol over the given Sigma-protocol and group.
func New(proto Protocol, g group.Group, opts ...Option) *NISigmaProtocol {
	n := &NISigmaProtocol{proto: proto, group: g}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// newCodec binds a fresh Codec to (protocol_id, session_id, instance_label):
// the IV is derived from the protocol and session identifiers (sigma.DeriveIV),
// and the instance_label is absorbed as the codec's own first operation, not
// folded into the IV (spec.md §9 open question 3).
func (n *NISigmaProtocol) newCodec(sessionID []byte) *codec.Codec {
	protocolID := n.proto.ProtocolID()
	iv := DeriveIV(protocolID[:], sessionID)
	c := codec.New(n.group, duplex.Init(iv))
	c.AbsorbLabel(n.proto.InstanceLabel())
	return c
}

// Prove produces a compact (challenge, response) proof for witness under the
// given session identifier.
func (n *NISigmaProtocol) Prove(sessionID []byte, witness any, rng io.Reader) ([]byte, error) {
	c := n.newCodec(sessionID)

	proverState, commitment, err := n.proto.ProverCommit(witness, rng)
	if err != nil {
		return nil, err
	}
	c.ProverMessage(commitment)

	challenge := c.VerifierChallenge()

	response, err := n.proto.ProverResponse(proverState, challenge)
	if err != nil {
		return nil, err
	}

	if !n.proto.Verifier(commitment, challenge, response) {
		panic(ErrInternalConsistency)
	}

	out := append(n.proto.SerializeChallenge(challenge), n.proto.SerializeResponse(response)...)
	if n.tag != nil {
		out = append([]byte{n.tag.compact}, out...)
	}
	return out, nil
}

// Verify checks a compact proof under the given session identifier. It
// reconstructs the candidate commitment A' = SimulateCommitment(z, c), then
// rehashes: absorbs A' into a fresh codec bound to sessionID and squeezes a
// challenge c', accepting only if c' == c. SimulateCommitment being the
// algebraic inverse of the Sigma-protocol's verification equation means
// Verifier(A', c, z) holds unconditionally for any deserializable (c, z);
// the challenge is bound to the commitment only by this rehash, exactly as
// VerifyBatchable binds its own decoded commitment. Every failure mode
// collapses to `false`.
func (n *NISigmaProtocol) Verify(sessionID, proof []byte) bool {
	if n.tag != nil {
		if len(proof) == 0 || proof[0] != n.tag.compact {
			return false
		}
		proof = proof[1:]
	}

	want := n.group.ScalarByteLength() + n.proto.ResponseBytesLen()
	if len(proof) != want {
		return false
	}

	challengeBytes := proof[:n.group.ScalarByteLength()]
	responseBytes := proof[n.group.ScalarByteLength():]

	challenge, err := n.proto.DeserializeChallenge(challengeBytes)
	if err != nil {
		return false
	}
	response, err := n.proto.DeserializeResponse(responseBytes)
	if err != nil {
		return false
	}

	commitment := n.proto.SimulateCommitment(response, challenge)

	c := n.newCodec(sessionID)
	c.ProverMessage(commitment)
	rehashed := c.VerifierChallenge()

	return rehashed.Equal(challenge)
}

// ProveBatchable produces a batchable (commitment, response) proof for
// witness under the given session identifier. Batchable proofs permit batch
// verification of many proofs under a common Sigma-protocol.
func (n *NISigmaProtocol) ProveBatchable(sessionID []byte, witness any, rng io.Reader) ([]byte, error) {
	c := n.newCodec(sessionID)

	proverState, commitment, err := n.proto.ProverCommit(witness, rng)
	if err != nil {
		return nil, err
	}
	c.ProverMessage(commitment)

	challenge := c.VerifierChallenge()

	response, err := n.proto.ProverResponse(proverState, challenge)
	if err != nil {
		return nil, err
	}

	if !n.proto.Verifier(commitment, challenge, response) {
		panic(ErrInternalConsistency)
	}

	out := append(n.proto.SerializeCommitment(commitment), n.proto.SerializeResponse(response)...)
	if n.tag != nil {
		out = append([]byte{n.tag.batchable}, out...)
	}
	return out, nil
}

// VerifyBatchable checks a batchable proof under the given session
// identifier: it absorbs the deserialized commitment into a fresh codec,
// squeezes the challenge, and checks the Sigma-protocol's verification
// equation. Every failure mode collapses to `false`.
func (n *NISigmaProtocol) VerifyBatchable(sessionID, proof []byte) bool {
	if n.tag != nil {
		if len(proof) == 0 || proof[0] != n.tag.batchable {
			return false
		}
		proof = proof[1:]
	}

	want := n.proto.CommitBytesLen() + n.proto.ResponseBytesLen()
	if len(proof) != want {
		return false
	}

	commitBytes := proof[:n.proto.CommitBytesLen()]
	responseBytes := proof[n.proto.CommitBytesLen():]

	commitment, err := n.proto.DeserializeCommitment(commitBytes)
	if err != nil {
		return false
	}
	response, err := n.proto.DeserializeResponse(responseBytes)
	if err != nil {
		return false
	}

	c := n.newCodec(sessionID)
	c.ProverMessage(commitment)
	challenge := c.VerifierChallenge()

	return n.proto.Verifier(commitment, challenge, response)
}
