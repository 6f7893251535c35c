package bbsblind_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/group/p256"
	"github.com/sigma-rs/sigma-go/protocols/bbsblind"
	"github.com/sigma-rs/sigma-go/sigma"
)

func newStatement(t *testing.T) (*bbsblind.Protocol, bbsblind.Witness) {
	t.Helper()

	g := p256.Group
	base := g.Generator()

	gen := func() (group.Element, error) {
		sc, err := g.RandomScalar(rand.Reader)
		if err != nil {
			return nil, err
		}
		return base.ScalarMult(sc), nil
	}

	q2, err := gen()
	if err != nil {
		t.Fatal(err)
	}
	j1, err := gen()
	if err != nil {
		t.Fatal(err)
	}
	j2, err := gen()
	if err != nil {
		t.Fatal(err)
	}
	j3, err := gen()
	if err != nil {
		t.Fatal(err)
	}

	scalar := func() group.Scalar {
		sc, err := g.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		return sc
	}
	s, m1, m2, m3 := scalar(), scalar(), scalar(), scalar()

	c := q2.ScalarMult(s).Add(j1.ScalarMult(m1)).Add(j2.ScalarMult(m2)).Add(j3.ScalarMult(m3))

	var protocolID [64]byte
	copy(protocolID[:], "bbsblind-test")

	proto := bbsblind.New(g, q2, j1, j2, j3, c, protocolID, []byte("instance"))
	return proto, bbsblind.Witness{S: s, M1: m1, M2: m2, M3: m3}
}

func TestCompactRoundtrip(t *testing.T) {
	proto, witness := newStatement(t)
	ni := sigma.New(proto, p256.Group)

	proof, err := ni.Prove([]byte("session"), witness, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if !ni.Verify([]byte("session"), proof) {
		t.Fatal("compact proof did not verify")
	}
}

func TestBatchableRoundtrip(t *testing.T) {
	proto, witness := newStatement(t)
	ni := sigma.New(proto, p256.Group)

	proof, err := ni.ProveBatchable([]byte("session"), witness, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if !ni.VerifyBatchable([]byte("session"), proof) {
		t.Fatal("batchable proof did not verify")
	}
}

func TestTamperedResponseRejected(t *testing.T) {
	proto, witness := newStatement(t)
	ni := sigma.New(proto, p256.Group)

	proof, err := ni.ProveBatchable([]byte("session"), witness, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tampered := bytes.Clone(proof)
	tampered[len(tampered)-1] ^= 0xFF

	if ni.VerifyBatchable([]byte("session"), tampered) {
		t.Fatal("tampered proof verified")
	}
}

func TestMalformedResponseLengthRejected(t *testing.T) {
	proto, _ := newStatement(t)

	_, err := proto.DeserializeResponse(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error for malformed response length")
	}
}
