// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is an immutable point on a short Weierstrass curve in affine
// coordinates, or the point at infinity.
//
// The zero value is the point at infinity.  Coordinates are copied when a
// point is created and when they are read back, so a Point can be shared
// freely between goroutines and never changes after construction.
//
// A Point does not carry its curve.  Every operation that depends on the curve
// takes the curve parameters explicitly.
type Point struct {
	x, y   *big.Int
	affine bool
}

// NewAffinePoint returns the affine point (x, y).  The coordinates are
// expected to already be canonical residues modulo the field prime of the
// curve the point is used with.
func NewAffinePoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		affine: true,
	}
}

// Infinity returns the point at infinity, the identity element of the group.
func Infinity() Point {
	return Point{}
}

// IsInfinity returns whether the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.affine
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal returns whether the two points are identical.  The point at infinity
// is only equal to itself.
func (p Point) Equal(other Point) bool {
	if p.affine != other.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// String returns the point as (x, y) in hex, or "infinity".
func (p Point) String() string {
	if !p.affine {
		return "infinity"
	}
	return fmt.Sprintf("(%x, %x)", p.x, p.y)
}
