// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package weierstrass implements elliptic curve arithmetic over short Weierstrass
curves y² = x³ + ax + b modulo an arbitrary prime p in pure Go.

The package is meant for investigating elliptic curves rather than for
production signing: every operation works on math/big integers in affine
coordinates and none of it is constant time.  Any curve can be described by its
parameters, secp256k1 being the usual example.  See
https://www.secg.org/sec2-v2.pdf for the secp256k1 parameters and
https://www.secg.org/sec1-v2.pdf for the point encodings.

An overview of the features provided by this package are as follows:

  - Modular field arithmetic: reduction, inversion and exponentiation
  - Hexadecimal parsing and fixed width serialization of field elements
  - Curve parameters built from hex strings with optional strict validation
  - Point addition and doubling including the point at infinity
  - Scalar multiplication with an arbitrary point and with the base point
  - Point decompression from a given x coordinate for primes p ≡ 3 (mod 4)
  - Parsing and serializing of compressed and uncompressed public keys
  - Public key derivation from a hex encoded private scalar

All functions are pure.  Points and curve parameters are immutable values, so
they can be shared between goroutines without synchronization.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so the
reason for a failure can be checked with errors.Is:

	_, err := weierstrass.DecodePoint(curve, encoded)
	if errors.Is(err, weierstrass.ErrPointNotOnCurve) {
		// handle
	}

ModPow is the exception: a negative exponent is a caller bug and makes it
panic.

# Example

	curve, err := weierstrass.BuildCurve("0", "7",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		"0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	if err != nil {
		return err
	}
	pub, err := weierstrass.DerivePublicKey(curve, "1")
	if err != nil {
		return err
	}
	fmt.Println(weierstrass.FormatPoint(pub, curve.FieldByteWidth()))
*/
package weierstrass
