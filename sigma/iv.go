package sigma

import "github.com/sigma-rs/sigma-go/duplex"

// DeriveIV computes the 32-byte domain-separation IV for a working sponge
// from a protocol identifier and a session identifier, as a pure function
// over a disposable bootstrap sponge.
//
// This is the canonical, pinned scheme: construct a sponge on a zero IV,
// absorb length-prefixed protocol_id and session_id, and squeeze 32 bytes.
// The instance_label is deliberately NOT absorbed here — it is bound by the
// Codec's own init step instead (see newCodec), not by the IV. An alternative
// scheme (constructing the working sponge directly on protocol_id) exists in
// some implementations of this construction but produces an incompatible
// transcript; this package implements only the derived-IV scheme.
func DeriveIV(protocolID, sessionID []byte) [32]byte {
	boot := duplex.Init([32]byte{})
	boot.Absorb(lengthPrefixed(protocolID))
	boot.Absorb(lengthPrefixed(sessionID))

	var iv [32]byte
	copy(iv[:], boot.Squeeze(32))
	return iv
}

// lengthPrefixed returns I2OSP(len(data), 4) || data.
func lengthPrefixed(data []byte) []byte {
	out := make([]byte, 4+len(data))
	out[0] = byte(len(data) >> 24)
	out[1] = byte(len(data) >> 16)
	out[2] = byte(len(data) >> 8)
	out[3] = byte(len(data))
	copy(out[4:], data)
	return out
}
