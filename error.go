// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidHexInput is returned when a string that should contain a
	// hexadecimal integer is empty or contains characters other than the
	// hexadecimal digits.
	ErrInvalidHexInput = ErrorKind("ErrInvalidHexInput")

	// ErrInvalidCurveParameters is returned by strict curve construction when
	// the parameters fail a sanity check such as a singular curve or a base
	// point that is not on the curve.
	ErrInvalidCurveParameters = ErrorKind("ErrInvalidCurveParameters")

	// ErrNotInvertible is returned when a modular inverse is requested for a
	// value that shares a factor with the modulus, notably zero.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrUnsupportedModulus is returned when decoding a compressed point on a
	// curve whose field prime is not congruent to 3 mod 4.
	ErrUnsupportedModulus = ErrorKind("ErrUnsupportedModulus")

	// ErrMalformedPublicKeyEncoding is returned when a point encoding has an
	// unknown format tag or the wrong length.
	ErrMalformedPublicKeyEncoding = ErrorKind("ErrMalformedPublicKeyEncoding")

	// ErrInvalidScalar is returned when a scalar multiplication is requested
	// with a negative or missing scalar.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrPointNotOnCurve is returned when a decoded point does not satisfy the
	// curve equation or one of its coordinates is not a canonical field
	// element.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrPointAtInfinity is returned when attempting to serialize the point at
	// infinity, which has no affine encoding.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve arithmetic or point encoding.  It
// has full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
