package keccak //nolint:testpackage // testing internals

import (
	"crypto/sha3"
	"encoding/hex"
	"testing"
)

func TestPermuteZeroState(t *testing.T) {
	var state [200]byte
	Permute(&state)

	got := hex.EncodeToString(state[:])
	want := "e7dde140798f25f18a47c033f9ccd584eea95aa61e2698d54d49806f304715b" +
		"d57d05362054e288bd46f8e7f2da497ffc44746a4a0e5fe90762e19d60cda5b8" +
		"c9c05191bf7a630ad64fc8fd0b75a933035d617233fa95aeb0321710d26e6a6a" +
		"95f55cfdb167ca58126c84703cd31b8439f56a5111a2ff20161aed9215a63e50" +
		"5f270c98cf2febe641166c47b95703661cb0ed04f555a7cb8c832cf1c8ae83e8" +
		"c14263aae22790c94e409c5a224f94118c26504e72635f5163ba1307fe944f67" +
		"549a2ec5c7bfff1ea"
	if got != want {
		t.Fatalf("Permute(0^200) = %s, want %s", got, want)
	}
}

func TestPermuteDeterministicOnCopy(t *testing.T) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-permute-test"))

	var state [200]byte
	_, _ = drbg.Read(state[:])

	a := state
	b := state
	Permute(&a)
	Permute(&b)

	if a != b {
		t.Fatalf("Permute is not deterministic: %x != %x", a, b)
	}
	if a == state {
		t.Fatalf("Permute did not change the state")
	}
}

func FuzzPermute(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-permute-fuzz"))
	for range 10 {
		var state [200]byte
		_, _ = drbg.Read(state[:])
		f.Add(state[:])
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 200 {
			t.Skip("wrong length")
		}

		var a, b [200]byte
		copy(a[:], data)
		copy(b[:], data)

		Permute(&a)
		Permute(&b)

		if a != b {
			t.Fatalf("Permute diverged on identical input")
		}
	})
}
