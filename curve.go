// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// CurveParams holds the parameters of a short Weierstrass curve
// y² = x³ + ax + b over the integers modulo the prime p, together with a base
// point G of nominal order n.
//
// CurveParams are immutable once constructed.  The accessors return copies of
// the underlying integers.
type CurveParams struct {
	a, b, p, n *big.Int
	g          Point
}

// NewCurveParams returns curve parameters built from already decoded values.
// The integers are copied.  No validation is performed; use Validate for the
// strict checks.
func NewCurveParams(a, b, p, n *big.Int, g Point) *CurveParams {
	return &CurveParams{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		p: new(big.Int).Set(p),
		n: new(big.Int).Set(n),
		g: g,
	}
}

// A returns the linear coefficient of the curve equation.
func (c *CurveParams) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant term of the curve equation.
func (c *CurveParams) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns the field prime.
func (c *CurveParams) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns the order of the base point.
func (c *CurveParams) N() *big.Int { return new(big.Int).Set(c.n) }

// G returns the base point.
func (c *CurveParams) G() Point { return c.g }

// FieldByteWidth returns the serialized size in bytes of a single coordinate.
func (c *CurveParams) FieldByteWidth() int {
	return FieldByteWidth(c.p)
}

func (c *CurveParams) field() field {
	return field{p: c.p}
}

// IsOnCurve returns whether the point satisfies the curve equation.  The point
// at infinity is considered to be on every curve.  Affine points with a
// coordinate outside [0, p) are rejected.
func (c *CurveParams) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	if !c.isCanonical(pt.x) || !c.isCanonical(pt.y) {
		return false
	}
	f := c.field()
	return f.square(pt.y).Cmp(f.polynomial(pt.x, c.a, c.b)) == 0
}

func (c *CurveParams) isCanonical(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(c.p) < 0
}

// CurveOption configures BuildCurve.
type CurveOption func(*curveOptions)

type curveOptions struct {
	strict bool
}

// WithStrictValidation makes BuildCurve reject parameters that fail Validate.
func WithStrictValidation() CurveOption {
	return func(o *curveOptions) {
		o.strict = true
	}
}

// BuildCurve decodes the curve coefficients a and b, the field prime p and the
// order n from hexadecimal text and the base point G from its SEC 1 style
// encoding (see DecodePoint).
//
// G is always checked against the curve equation when it is decoded.  Beyond
// that nothing is validated by default: a singular curve or a base point of the
// wrong order is accepted and simply yields meaningless results.  Pass WithStrictValidation to have such parameters rejected with
// ErrInvalidCurveParameters.
func BuildCurve(aHex, bHex, pHex, nHex, gEncoding string, opts ...CurveOption) (*CurveParams, error) {
	var o curveOptions
	for _, opt := range opts {
		opt(&o)
	}

	var a, b, p, n *big.Int
	type param struct {
		name string
		hex  string
		dst  **big.Int
	}
	params := []param{
		{"a", aHex, &a},
		{"b", bHex, &b},
		{"p", pHex, &p},
		{"n", nHex, &n},
	}
	for _, f := range params {
		v, err := DecodeHex(f.hex)
		if err != nil {
			str := fmt.Sprintf("curve parameter %s: %v", f.name, err)
			return nil, makeError(ErrInvalidHexInput, str)
		}
		*f.dst = v
	}

	if o.strict {
		// The prime must be usable as a modulus before the base point can be
		// decoded against it.
		if p.Cmp(bigThree) <= 0 {
			str := fmt.Sprintf("field prime %x must be greater than 3", p)
			return nil, makeError(ErrInvalidCurveParameters, str)
		}
	} else if p.Sign() == 0 {
		return nil, makeError(ErrInvalidCurveParameters, "field prime is zero")
	}

	curve := &CurveParams{a: a, b: b, p: p, n: n}
	g, err := DecodePoint(curve, gEncoding)
	if err != nil {
		return nil, err
	}
	curve.g = g

	if o.strict {
		if err := curve.Validate(); err != nil {
			return nil, err
		}
	}
	return curve, nil
}

// Validate performs the sanity checks of strict mode: p is a probable prime
// greater than 3, a and b are reduced, the curve is non-singular, n > 1, and G
// is an affine point on the curve with n·G equal to the point at infinity,
// checked as (n-1)·G = -G.
func (c *CurveParams) Validate() error {
	if c.p.Cmp(bigThree) <= 0 || !c.p.ProbablyPrime(20) {
		str := fmt.Sprintf("field modulus %x is not a prime greater than 3", c.p)
		return makeError(ErrInvalidCurveParameters, str)
	}
	if !c.isCanonical(c.a) || !c.isCanonical(c.b) {
		str := "curve coefficients must be reduced modulo p"
		return makeError(ErrInvalidCurveParameters, str)
	}

	// 4a³ + 27b² ≢ 0 (mod p)
	f := c.field()
	disc := f.add(f.mulInt(f.mul(f.square(c.a), c.a), 4),
		f.mulInt(f.square(c.b), 27))
	if disc.Sign() == 0 {
		return makeError(ErrInvalidCurveParameters, "curve is singular")
	}

	if c.n.Cmp(bigOne) <= 0 {
		str := fmt.Sprintf("group order %x must be greater than 1", c.n)
		return makeError(ErrInvalidCurveParameters, str)
	}
	if c.g.IsInfinity() || !c.IsOnCurve(c.g) {
		str := fmt.Sprintf("base point %v is not on the curve", c.g)
		return makeError(ErrInvalidCurveParameters, str)
	}

	// (n-1)·G = -G avoids doubling (n/2)·G, which has y = 0 when n is even.
	nm1 := new(big.Int).Sub(c.n, bigOne)
	ng, err := ScalarBaseMult(c, nm1)
	if err != nil {
		str := fmt.Sprintf("unable to verify base point order: %v", err)
		return makeError(ErrInvalidCurveParameters, str)
	}
	if !ng.Equal(Negate(c, c.g)) {
		str := fmt.Sprintf("base point does not have order %x", c.n)
		return makeError(ErrInvalidCurveParameters, str)
	}
	return nil
}
