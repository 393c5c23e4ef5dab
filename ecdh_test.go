// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// TestGenerateSharedSecret ensures both sides of an exchange derive the same
// secret and that it matches the btcec implementation on secp256k1.
func TestGenerateSharedSecret(t *testing.T) {
	t.Parallel()

	curve := secp256k1Curve(t)
	keys := oracleScalars(6)
	for i := 0; i+1 < len(keys); i += 2 {
		privA := new(big.Int).SetBytes(keys[i])
		privB := new(big.Int).SetBytes(keys[i+1])
		pubA, err := ScalarBaseMult(curve, privA)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		pubB, err := ScalarBaseMult(curve, privB)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}

		secretA, err := GenerateSharedSecret(curve, privA, pubB)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		secretB, err := GenerateSharedSecret(curve, privB, pubA)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		if !bytes.Equal(secretA, secretB) {
			t.Fatalf("#%d: ECDH failed -- %x != %x", i, secretA, secretB)
		}

		btcPrivA, _ := btcec.PrivKeyFromBytes(keys[i])
		_, btcPubB := btcec.PrivKeyFromBytes(keys[i+1])
		want := btcec.GenerateSharedSecret(btcPrivA, btcPubB)
		if !bytes.Equal(secretA, want) {
			t.Fatalf("#%d: mismatched secret -- got %x, want %x", i, secretA, want)
		}
	}
}

// TestGenerateSharedSecretToy ensures secrets on a small curve are padded to
// the field width and that invalid inputs are rejected.
func TestGenerateSharedSecretToy(t *testing.T) {
	t.Parallel()

	curve := toyCurve(t)

	// 3·(2·G) = 6·G = (29, 31) on y² = x³ + 7 over F_43.
	pub2G := affine(7, 7)
	secret, err := GenerateSharedSecret(curve, big.NewInt(3), pub2G)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(secret, []byte{29}) {
		t.Fatalf("mismatched secret -- got %x, want 1d", secret)
	}

	tests := []struct {
		name string
		priv *big.Int
		pub  Point
		err  error
	}{
		{"off curve", big.NewInt(3), affine(2, 2), ErrPointNotOnCurve},
		{"infinity", big.NewInt(3), Infinity(), ErrPointNotOnCurve},
		{"order multiple", big.NewInt(31), affine(2, 12), ErrPointAtInfinity},
		{"zero scalar", big.NewInt(0), affine(2, 12), ErrPointAtInfinity},
		{"negative scalar", big.NewInt(-1), affine(2, 12), ErrInvalidScalar},
	}
	for _, test := range tests {
		_, err := GenerateSharedSecret(curve, test.priv, test.pub)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
		}
	}
}
