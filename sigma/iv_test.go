package sigma_test

import (
	"bytes"
	"testing"

	"github.com/sigma-rs/sigma-go/sigma"
)

func TestDeriveIVDeterministic(t *testing.T) {
	a := sigma.DeriveIV([]byte("protocol"), []byte("session"))
	b := sigma.DeriveIV([]byte("protocol"), []byte("session"))
	if a != b {
		t.Fatal("DeriveIV is not deterministic")
	}
}

func TestDeriveIVBindsBothIdentifiers(t *testing.T) {
	base := sigma.DeriveIV([]byte("protocol"), []byte("session"))

	if other := sigma.DeriveIV([]byte("protocol-x"), []byte("session")); other == base {
		t.Fatal("changing protocol_id did not change IV")
	}
	if other := sigma.DeriveIV([]byte("protocol"), []byte("session-x")); other == base {
		t.Fatal("changing session_id did not change IV")
	}
}

func TestDeriveIVNoBoundaryConfusion(t *testing.T) {
	// "ab"||"cd" must not collide with "a"||"bcd": the length-prefix
	// encoding must prevent the concatenation from being ambiguous about
	// where protocol_id ends and session_id begins.
	a := sigma.DeriveIV([]byte("ab"), []byte("cd"))
	b := sigma.DeriveIV([]byte("a"), []byte("bcd"))
	if a == b {
		t.Fatal("DeriveIV is vulnerable to boundary confusion between protocol_id and session_id")
	}
}

func TestDeriveIVEmptyIdentifiers(t *testing.T) {
	a := sigma.DeriveIV(nil, nil)
	b := sigma.DeriveIV([]byte{}, []byte{})
	if a != b {
		t.Fatal("nil and empty identifiers should derive identical IVs")
	}
	if bytes.Equal(a[:], make([]byte, 32)) {
		t.Fatal("IV for empty identifiers must not be the all-zero state")
	}
}
