package p256_test

import (
	"crypto/rand"
	"testing"

	"github.com/sigma-rs/sigma-go/group/p256"
)

func TestElementRoundTrip(t *testing.T) {
	s, err := p256.Group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	e := p256.Group.Generator().ScalarMult(s)
	encoded := e.Encode()

	if len(encoded) != p256.Group.ElementByteLength() {
		t.Fatalf("encoded element length = %d, want %d", len(encoded), p256.Group.ElementByteLength())
	}

	decoded, err := p256.Group.DeserializeElement(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !e.Equal(decoded) {
		t.Fatal("decoded element does not equal the original")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	s, err := p256.Group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	encoded := s.Encode()
	if len(encoded) != p256.Group.ScalarByteLength() {
		t.Fatalf("encoded scalar length = %d, want %d", len(encoded), p256.Group.ScalarByteLength())
	}

	decoded, err := p256.Group.DeserializeScalar(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !s.Equal(decoded) {
		t.Fatal("decoded scalar does not equal the original")
	}
}

func TestDeserializeElementRejectsWrongLength(t *testing.T) {
	if _, err := p256.Group.DeserializeElement(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a short element buffer")
	}
}

func TestDeserializeElementRejectsBadTag(t *testing.T) {
	buf := p256.Group.Generator().Encode()
	buf[0] = 0x04
	if _, err := p256.Group.DeserializeElement(buf); err == nil {
		t.Fatal("expected an error for an invalid sign tag")
	}
}

func TestDeserializeScalarRejectsOutOfRange(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = 0xff
	}
	if _, err := p256.Group.DeserializeScalar(buf); err == nil {
		t.Fatal("expected an error for a scalar >= q")
	}
}

func TestScalarArithmeticMatchesPointArithmetic(t *testing.T) {
	a, err := p256.Group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p256.Group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	// (a+b)*G == a*G + b*G
	lhs := p256.Group.Generator().ScalarMult(a.Add(b))
	rhs := p256.Group.Generator().ScalarMult(a).Add(p256.Group.Generator().ScalarMult(b))

	if !lhs.Equal(rhs) {
		t.Fatal("scalar addition does not distribute over scalar multiplication")
	}
}

func TestSignTagRoundTripsBothParities(t *testing.T) {
	// Find scalars producing both even and odd y so both decompression
	// branches in decompressY are exercised.
	var sawEven, sawOdd bool
	for i := 0; i < 64 && !(sawEven && sawOdd); i++ {
		s, err := p256.Group.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		e := p256.Group.Generator().ScalarMult(s)
		tag := e.Encode()[0]
		if tag == 0x02 {
			sawEven = true
		} else {
			sawOdd = true
		}

		decoded, err := p256.Group.DeserializeElement(e.Encode())
		if err != nil {
			t.Fatal(err)
		}
		if !e.Equal(decoded) {
			t.Fatal("roundtrip mismatch")
		}
	}

	if !sawEven || !sawOdd {
		t.Skip("did not observe both sign parities in the sample")
	}
}
