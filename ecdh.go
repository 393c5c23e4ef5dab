// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// GenerateSharedSecret generates a shared secret based on a private scalar and
// a public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x, serialized big endian and
// padded to the field byte width.
//
// The public key must lie on the curve.  A product equal to the point at
// infinity has no x coordinate and fails with ErrPointAtInfinity.
//
// It is recommended to securely hash the result before using as a cryptographic
// key.
func GenerateSharedSecret(curve *CurveParams, priv *big.Int, pub Point) ([]byte, error) {
	if pub.IsInfinity() || !curve.IsOnCurve(pub) {
		str := fmt.Sprintf("public key %v is not on the curve", pub)
		return nil, makeError(ErrPointNotOnCurve, str)
	}

	result, err := ScalarMult(curve, pub, priv)
	if err != nil {
		return nil, err
	}
	if result.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity, "shared point is the point at infinity")
	}
	return result.x.FillBytes(make([]byte, curve.FieldByteWidth())), nil
}
