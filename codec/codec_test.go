package codec_test

import (
	"crypto/sha3"
	"testing"

	"github.com/sigma-rs/sigma-go/codec"
	"github.com/sigma-rs/sigma-go/duplex"
	"github.com/sigma-rs/sigma-go/group"
	"github.com/sigma-rs/sigma-go/group/p256"
	"github.com/sigma-rs/sigma-go/group/ristretto"
)

func testIV(label string) [32]byte {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(label))
	var iv [32]byte
	_, _ = h.Read(iv[:])
	return iv
}

func TestProverMessageThenChallengeIsDeterministic(t *testing.T) {
	iv := testIV("codec-determinism")

	c1 := codec.New(p256.Group, duplex.Init(iv))
	c2 := codec.New(p256.Group, duplex.Init(iv))

	a := p256.Group.Generator()
	c1.ProverMessage(a)
	c2.ProverMessage(a)

	ch1 := c1.VerifierChallenge()
	ch2 := c2.VerifierChallenge()

	if !ch1.Equal(ch2) {
		t.Fatal("identical transcripts produced different challenges")
	}
}

func TestDifferentProverMessagesDiverge(t *testing.T) {
	iv := testIV("codec-divergence")

	c1 := codec.New(p256.Group, duplex.Init(iv))
	c2 := codec.New(p256.Group, duplex.Init(iv))

	g := p256.Group.Generator()
	c1.ProverMessage(g)
	c2.ProverMessage(g.Add(g))

	if c1.VerifierChallenge().Equal(c2.VerifierChallenge()) {
		t.Fatal("distinct prover messages produced the same challenge")
	}
}

func TestVerifierChallengesAreIndependent(t *testing.T) {
	iv := testIV("codec-independence")
	c := codec.New(p256.Group, duplex.Init(iv))
	c.ProverMessage(p256.Group.Generator())

	challenges := c.VerifierChallenges(8)
	for i := range challenges {
		for j := range challenges {
			if i != j && challenges[i].Equal(challenges[j]) {
				t.Fatalf("challenge %d and %d unexpectedly equal", i, j)
			}
		}
	}
}

// TestUnbiasedScalarSampling buckets a large number of P-256 challenge
// scalars and checks the distribution is approximately uniform (spec
// property 5). This is a coarse statistical smoke test, not a rigorous
// chi-square significance test, kept cheap enough to run in a normal test
// suite.
func TestUnbiasedScalarSampling(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical sampling test in -short mode")
	}

	const (
		trials  = 1 << 16
		buckets = 64
	)

	counts := make([]int, buckets)
	for i := 0; i < trials; i++ {
		iv := testIV("sampling")
		c := codec.New(p256.Group, duplex.Init(iv))
		c.ProverMessage(p256.Group.Generator().ScalarMult(mustScalar(t, i)))
		ch := c.VerifierChallenge()

		b := int(ch.Encode()[0]) % buckets
		counts[b]++
	}

	expected := float64(trials) / float64(buckets)
	var chiSq float64
	for _, c := range counts {
		d := float64(c) - expected
		chiSq += d * d / expected
	}

	// 63 degrees of freedom; a generous upper bound well above the 99.9th
	// percentile critical value catches only gross bias, not normal
	// statistical noise.
	const chiSqUpperBound = 160.0
	if chiSq > chiSqUpperBound {
		t.Fatalf("chi-square statistic %.2f exceeds bound %.2f; sampling looks biased", chiSq, chiSqUpperBound)
	}
}

func mustScalar(t *testing.T, i int) group.Scalar {
	t.Helper()
	buf := make([]byte, 48)
	buf[47] = byte(i)
	buf[46] = byte(i >> 8)
	return p256.Group.ReduceWide(buf)
}

func TestRistrettoChallengeSamplingRoundTrips(t *testing.T) {
	iv := testIV("ristretto-codec")
	c := codec.New(ristretto.Group, duplex.Init(iv))
	c.ProverMessage(ristretto.Group.Generator())

	ch := c.VerifierChallenge()
	if len(ch.Encode()) != ristretto.Group.ScalarByteLength() {
		t.Fatalf("challenge encoding length = %d, want %d", len(ch.Encode()), ristretto.Group.ScalarByteLength())
	}

	decoded, err := ristretto.Group.DeserializeScalar(ch.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if !ch.Equal(decoded) {
		t.Fatal("decoded challenge does not equal the original")
	}
}
