// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// Normalize returns v reduced into the canonical range [0, p).  Negative
// values are mapped to their positive residue.  The input is not modified.
func Normalize(v, p *big.Int) *big.Int {
	// big.Int.Mod implements Euclidean modulus, so the result is already
	// non-negative for a positive modulus.
	return new(big.Int).Mod(v, p)
}

// ModInverse returns the multiplicative inverse of v modulo p using the
// extended Euclidean algorithm.  ErrNotInvertible is returned when v and p
// are not coprime, which in particular covers v ≡ 0 (mod p).
func ModInverse(v, p *big.Int) (*big.Int, error) {
	r := Normalize(v, p)
	if r.Sign() == 0 {
		str := "zero has no inverse modulo p"
		return nil, makeError(ErrNotInvertible, str)
	}
	if r.ModInverse(r, p) == nil {
		str := fmt.Sprintf("%x is not invertible modulo %x", v, p)
		return nil, makeError(ErrNotInvertible, str)
	}
	return r, nil
}

// ModPow returns base^exp mod p computed by repeated squaring.  The exponent
// must not be negative.
func ModPow(base, exp, p *big.Int) *big.Int {
	if exp.Sign() < 0 {
		panic("ModPow: negative exponent")
	}
	return new(big.Int).Exp(Normalize(base, p), exp, p)
}

// field performs arithmetic modulo a fixed prime.  Every method returns a
// newly allocated canonical residue and leaves its operands untouched, so all
// reductions in the group law happen here.
type field struct {
	p *big.Int
}

func (f field) add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

func (f field) sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

func (f field) mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

func (f field) square(a *big.Int) *big.Int {
	return f.mul(a, a)
}

func (f field) mulInt(a *big.Int, k int64) *big.Int {
	return f.mul(a, big.NewInt(k))
}

func (f field) inv(a *big.Int) (*big.Int, error) {
	return ModInverse(a, f.p)
}

func (f field) exp(a, e *big.Int) *big.Int {
	return ModPow(a, e, f.p)
}

// polynomial returns x³ + ax + b reduced modulo p.
func (f field) polynomial(x, a, b *big.Int) *big.Int {
	x3 := f.mul(f.square(x), x)
	return f.add(f.add(x3, f.mul(a, x)), b)
}
