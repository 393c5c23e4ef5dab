// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
)

// ScalarMult returns k·pt on the given curve using left-to-right
// double-and-add over the binary digits of k.
//
// A zero scalar or the point at infinity yields the point at infinity.  A nil
// or negative scalar is rejected with ErrInvalidScalar.  The scalar is not
// reduced modulo the group order, so callers that want k mod n must reduce it
// first; the result is the same either way.
//
// This is not constant time.
func ScalarMult(curve *CurveParams, pt Point, k *big.Int) (Point, error) {
	if k == nil {
		return Point{}, makeError(ErrInvalidScalar, "missing scalar")
	}
	if k.Sign() < 0 {
		str := fmt.Sprintf("negative scalar %d", k)
		return Point{}, makeError(ErrInvalidScalar, str)
	}
	if k.Sign() == 0 || pt.IsInfinity() {
		return Infinity(), nil
	}

	// The most significant bit is always set, so start from pt itself and
	// process the remaining bits.
	var err error
	result := pt
	for i := k.BitLen() - 2; i >= 0; i-- {
		result, err = Double(curve, result)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			result, err = Add(curve, result, pt)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// ScalarBaseMult returns k·G where G is the base point of the curve.
func ScalarBaseMult(curve *CurveParams, k *big.Int) (Point, error) {
	return ScalarMult(curve, curve.g, k)
}
