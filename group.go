// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import "math/big"

// Add returns the sum of the points a and b on the given curve using the
// affine chord-and-tangent group law.
//
// The point at infinity acts as the identity.  Adding a point to its
// reflection across the x-axis yields the point at infinity.  Adding a point to
// itself is delegated to Double, so adding a 2-torsion point (y = 0) to itself
// fails with ErrNotInvertible rather than returning the point at infinity.
//
// Both points must have canonical coordinates for the curve.  The result always
// does.
func Add(curve *CurveParams, a, b Point) (Point, error) {
	if a.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return a, nil
	}

	f := curve.field()

	// The difference has to be reduced before comparing with zero since the
	// raw subtraction of two canonical residues can be negative.
	dx := f.sub(b.x, a.x)
	if dx.Sign() == 0 {
		if a.y.Cmp(b.y) != 0 {
			// Vertical chord: b = -a.
			return Infinity(), nil
		}
		return Double(curve, a)
	}

	// s = (b.y - a.y) / (b.x - a.x)
	inv, err := f.inv(dx)
	if err != nil {
		return Point{}, err
	}
	s := f.mul(f.sub(b.y, a.y), inv)
	return chord(f, s, a, b.x), nil
}

// Double returns 2·a on the given curve using the tangent at a.  Doubling the
// point at infinity yields the point at infinity.  A point with y = 0 has a
// vertical tangent and ErrNotInvertible is returned for it.
func Double(curve *CurveParams, a Point) (Point, error) {
	if a.IsInfinity() {
		return a, nil
	}

	f := curve.field()

	// s = (3·x² + a) / 2·y
	inv, err := f.inv(f.mulInt(a.y, 2))
	if err != nil {
		return Point{}, err
	}
	num := f.add(f.mulInt(f.square(a.x), 3), curve.a)
	s := f.mul(num, inv)
	return chord(f, s, a, a.x), nil
}

// Negate returns the reflection of a across the x-axis, the additive inverse
// of a.
func Negate(curve *CurveParams, a Point) Point {
	if a.IsInfinity() {
		return a
	}
	f := curve.field()
	return Point{x: new(big.Int).Set(a.x), y: f.sub(new(big.Int), a.y), affine: true}
}

// chord completes an addition or doubling once the slope s of the line through
// a and the second point (with x coordinate bx) is known:
//
//	x = s² - a.x - bx
//	y = s·(a.x - x) - a.y
func chord(f field, s *big.Int, a Point, bx *big.Int) Point {
	x := f.sub(f.sub(f.square(s), a.x), bx)
	y := f.sub(f.mul(s, f.sub(a.x, x)), a.y)
	return Point{x: x, y: y, affine: true}
}
