// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
	"strings"
)

// These constants define the format tags of serialized points.  Each tag
// occupies the first octet, i.e. the first two hex digits, of an encoding.
const (
	// PubKeyFormatCompressed is the tag of a compressed point with an even y
	// coordinate.
	PubKeyFormatCompressed = "02"

	// PubKeyFormatCompressedOdd is the tag of a compressed point with an odd
	// y coordinate.
	PubKeyFormatCompressedOdd = "03"

	// PubKeyFormatUncompressed is the tag of an uncompressed point.
	PubKeyFormatUncompressed = "04"
)

// DecodePoint decodes a hex encoded point on the given curve.  The encoding is
// one of the following, where + denotes concatenation:
//
//	04 + X + Y  uncompressed
//	02 + X      compressed, y even
//	03 + X      compressed, y odd
//
// The uncompressed remainder must split evenly into X and Y.  Compressed points
// are only supported for field primes p ≡ 3 (mod 4), for which the square root
// of r is r^((p+1)/4); other primes fail with ErrUnsupportedModulus.
//
// Every decoded point is checked against the curve equation and
// ErrPointNotOnCurve is returned when it does not hold, including when a
// compressed x coordinate has no corresponding y.
func DecodePoint(curve *CurveParams, encoding string) (Point, error) {
	if len(encoding) < 2 {
		str := fmt.Sprintf("point encoding %q is missing the format tag", encoding)
		return Point{}, makeError(ErrMalformedPublicKeyEncoding, str)
	}

	tag, body := encoding[:2], encoding[2:]
	switch tag {
	case PubKeyFormatUncompressed:
		return decodeUncompressed(curve, body)

	case PubKeyFormatCompressed, PubKeyFormatCompressedOdd:
		return decompress(curve, body, tag == PubKeyFormatCompressedOdd)
	}

	str := fmt.Sprintf("unknown point format tag %q", tag)
	return Point{}, makeError(ErrMalformedPublicKeyEncoding, str)
}

func decodeUncompressed(curve *CurveParams, body string) (Point, error) {
	if len(body) == 0 || len(body)%2 != 0 {
		str := fmt.Sprintf("uncompressed point body has invalid length %d",
			len(body))
		return Point{}, makeError(ErrMalformedPublicKeyEncoding, str)
	}

	half := len(body) / 2
	x, err := DecodeHex(body[:half])
	if err != nil {
		return Point{}, err
	}
	y, err := DecodeHex(body[half:])
	if err != nil {
		return Point{}, err
	}

	pt := Point{x: x, y: y, affine: true}
	if !curve.IsOnCurve(pt) {
		str := fmt.Sprintf("point %v is not on the curve", pt)
		return Point{}, makeError(ErrPointNotOnCurve, str)
	}
	return pt, nil
}

// decompress recovers the y coordinate matching the x coordinate encoded in
// body and the requested parity.
func decompress(curve *CurveParams, body string, odd bool) (Point, error) {
	if new(big.Int).Mod(curve.p, bigFour).Cmp(bigThree) != 0 {
		str := fmt.Sprintf("compressed points require p ≡ 3 (mod 4), p = %x",
			curve.p)
		return Point{}, makeError(ErrUnsupportedModulus, str)
	}

	x, err := DecodeHex(body)
	if err != nil {
		return Point{}, err
	}
	if !curve.isCanonical(x) {
		str := fmt.Sprintf("x coordinate %x is not less than p", x)
		return Point{}, makeError(ErrPointNotOnCurve, str)
	}

	// y = ±r^((p+1)/4) where r = x³ + ax + b.
	f := curve.field()
	r := f.polynomial(x, curve.a, curve.b)
	e := new(big.Int).Add(curve.p, bigOne)
	e.Rsh(e, 2)
	y := f.exp(r, e)
	if f.square(y).Cmp(r) != 0 {
		str := fmt.Sprintf("x coordinate %x is not on the curve", x)
		return Point{}, makeError(ErrPointNotOnCurve, str)
	}

	// When y is zero both roots coincide and the parity cannot be honored, so
	// the single root is returned.
	if (y.Bit(0) == 1) != odd {
		y = f.sub(curve.p, y)
	}
	return Point{x: x, y: y, affine: true}, nil
}

// EncodeUncompressed serializes the point as 04 + X + Y with each coordinate
// padded to the field width of the curve.
func EncodeUncompressed(curve *CurveParams, pt Point) (string, error) {
	if pt.IsInfinity() {
		return "", makeError(ErrPointAtInfinity, "the point at infinity has no encoding")
	}
	width := 2 * curve.FieldByteWidth()
	var sb strings.Builder
	sb.Grow(2 + 2*width)
	sb.WriteString(PubKeyFormatUncompressed)
	sb.WriteString(EncodeHex(pt.x, width))
	sb.WriteString(EncodeHex(pt.y, width))
	return sb.String(), nil
}

// EncodeCompressed serializes the point as 02 + X when y is even and 03 + X
// when y is odd, with X padded to the field width of the curve.
func EncodeCompressed(curve *CurveParams, pt Point) (string, error) {
	if pt.IsInfinity() {
		return "", makeError(ErrPointAtInfinity, "the point at infinity has no encoding")
	}
	tag := PubKeyFormatCompressed
	if pt.y.Bit(0) == 1 {
		tag = PubKeyFormatCompressedOdd
	}
	return tag + EncodeHex(pt.x, 2*curve.FieldByteWidth()), nil
}

// DerivePublicKey decodes the hex encoded private scalar and returns the
// corresponding public key k·G.  The scalar is used as is; it is neither
// reduced modulo n nor required to be non-zero, and a zero scalar yields the
// point at infinity.
func DerivePublicKey(curve *CurveParams, privateScalarHex string) (Point, error) {
	k, err := DecodeHex(privateScalarHex)
	if err != nil {
		return Point{}, err
	}
	return ScalarBaseMult(curve, k)
}

// FormattedPoint is the printable form of a point.  X and Y are empty when
// Infinity is set.
type FormattedPoint struct {
	Infinity bool
	X, Y     string
}

// FormatPoint renders the point with each coordinate padded to
// 2·fieldByteWidth hex digits.
func FormatPoint(pt Point, fieldByteWidth int) FormattedPoint {
	if pt.IsInfinity() {
		return FormattedPoint{Infinity: true}
	}
	return FormattedPoint{
		X: EncodeHex(pt.x, 2*fieldByteWidth),
		Y: EncodeHex(pt.y, 2*fieldByteWidth),
	}
}
