// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"errors"
	"math/big"
	"testing"
)

// TestNormalize ensures values are reduced into [0, p) including negative
// values and values that are already canonical.
func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, p string // decimal
		want string
	}{
		{"0", "7", "0"},
		{"5", "7", "5"},
		{"7", "7", "0"},
		{"15", "7", "1"},
		{"-1", "7", "6"},
		{"-7", "7", "0"},
		{"-15", "7", "6"},
		{"-1", "115792089237316195423570985008687907853269984665640564039457584007908834671663",
			"115792089237316195423570985008687907853269984665640564039457584007908834671662"},
	}

	for i, test := range tests {
		v, _ := new(big.Int).SetString(test.v, 10)
		p, _ := new(big.Int).SetString(test.p, 10)
		orig := new(big.Int).Set(v)

		got := Normalize(v, p)
		if got.String() != test.want {
			t.Errorf("#%d: Normalize(%s, %s) = %s, want %s", i, test.v,
				test.p, got, test.want)
			continue
		}
		if v.Cmp(orig) != 0 {
			t.Errorf("#%d: input was modified to %s", i, v)
		}
	}
}

// TestModInverse ensures modular inverses are computed and values sharing a
// factor with the modulus are rejected with ErrNotInvertible.
func TestModInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, p int64
		want int64
		err  error
	}{
		{v: 3, p: 7, want: 5},
		{v: 1, p: 7, want: 1},
		{v: 6, p: 7, want: 6},
		{v: -1, p: 7, want: 6},
		{v: 10, p: 7, want: 5},
		{v: 2, p: 43, want: 22},
		{v: 0, p: 7, err: ErrNotInvertible},
		{v: 14, p: 7, err: ErrNotInvertible},
		{v: 6, p: 9, err: ErrNotInvertible},
	}

	for i, test := range tests {
		p := big.NewInt(test.p)
		got, err := ModInverse(big.NewInt(test.v), p)
		if !errors.Is(err, test.err) {
			t.Errorf("#%d: mismatched err -- got %v, want %v", i, err, test.err)
			continue
		}
		if test.err != nil {
			continue
		}
		if got.Int64() != test.want {
			t.Errorf("#%d: ModInverse(%d, %d) = %v, want %d", i, test.v,
				test.p, got, test.want)
			continue
		}

		// v·v⁻¹ ≡ 1 (mod p)
		check := new(big.Int).Mul(got, big.NewInt(test.v))
		if Normalize(check, p).Cmp(bigOne) != 0 {
			t.Errorf("#%d: %v is not the inverse of %d", i, got, test.v)
		}
	}
}

// TestModInverseLarge ensures inverses work at the secp256k1 field size.
func TestModInverseLarge(t *testing.T) {
	t.Parallel()

	p := hexToBig(secp256k1P)
	v := hexToBig(secp256k1Gx)
	inv, err := ModInverse(v, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	check := new(big.Int).Mul(v, inv)
	if Normalize(check, p).Cmp(bigOne) != 0 {
		t.Fatalf("%x is not the inverse of %x", inv, v)
	}

	if _, err := ModInverse(p, p); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("p mod p: got %v, want %v", err, ErrNotInvertible)
	}
}

// TestModPow ensures modular exponentiation works for small and large values.
func TestModPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, exp, p int64
		want         int64
	}{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},
		{0, 5, 7, 0},
		{5, 1, 7, 5},
		{-2, 3, 7, 6},
		{15, 11, 43, 31},
		{12, 2, 43, 15},
	}

	for i, test := range tests {
		got := ModPow(big.NewInt(test.base), big.NewInt(test.exp),
			big.NewInt(test.p))
		if got.Int64() != test.want {
			t.Errorf("#%d: ModPow(%d, %d, %d) = %v, want %d", i, test.base,
				test.exp, test.p, got, test.want)
		}
	}

	// Fermat: a^(p-1) ≡ 1 for the secp256k1 prime.
	p := hexToBig(secp256k1P)
	e := new(big.Int).Sub(p, bigOne)
	if got := ModPow(hexToBig(secp256k1Gy), e, p); got.Cmp(bigOne) != 0 {
		t.Fatalf("Fermat check failed: got %x", got)
	}
}

// TestModPowNegativeExponent ensures a negative exponent panics.
func TestModPowNegativeExponent(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("ModPow did not panic on a negative exponent")
		}
	}()
	ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
}
