package testdata_test

import (
	"bytes"
	"testing"

	"github.com/sigma-rs/sigma-go/group/p256"
	"github.com/sigma-rs/sigma-go/group/ristretto"
	"github.com/sigma-rs/sigma-go/internal/testdata"
)

func TestDeterministic(t *testing.T) {
	a := testdata.New("label").Data(32)
	b := testdata.New("label").Data(32)
	if !bytes.Equal(a, b) {
		t.Fatal("same customization produced different output")
	}

	c := testdata.New("other label").Data(32)
	if bytes.Equal(a, c) {
		t.Fatal("different customization produced same output")
	}
}

func TestKeyPairConsistentAcrossGroups(t *testing.T) {
	x1, y1 := testdata.New("keypair").KeyPair(p256.Group)
	x2, y2 := testdata.New("keypair").KeyPair(p256.Group)
	if !x1.Equal(x2) || !y1.Equal(y2) {
		t.Fatal("same customization produced different key pair")
	}

	rx, ry := testdata.New("keypair-ristretto").KeyPair(ristretto.Group)
	if rx == nil || ry == nil {
		t.Fatal("ristretto key pair generation failed")
	}
	rx2, ry2 := testdata.New("keypair-ristretto").KeyPair(ristretto.Group)
	if !rx.Equal(rx2) || !ry.Equal(ry2) {
		t.Fatal("same customization produced different ristretto key pair")
	}
}
