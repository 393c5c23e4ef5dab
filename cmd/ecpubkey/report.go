package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/ModChain/weierstrass"
	"github.com/ModChain/weierstrass/keyid"
	"github.com/pkg/errors"
)

// reporter prints derived public keys for a single curve.
type reporter struct {
	out     io.Writer
	curve   *weierstrass.CurveParams
	verbose bool

	// the curve parameters are printed once, before the first key
	paramsShown bool
}

func newReporter(out io.Writer, curve *weierstrass.CurveParams, verbose bool) *reporter {
	return &reporter{out: out, curve: curve, verbose: verbose}
}

// bitLen is the number of binary digits of v, counting zero as one digit.
func bitLen(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	return v.BitLen()
}

func (r *reporter) value(name string, v *big.Int) {
	fmt.Fprintf(r.out, "%s = %s (%d bits)\n", name, weierstrass.EncodeHex(v, 1), bitLen(v))
}

func (r *reporter) params() {
	r.value("a", r.curve.A())
	r.value("b", r.curve.B())
	r.value("p", r.curve.P())
	g := r.curve.G()
	r.value("Gx", g.X())
	r.value("Gy", g.Y())
	fmt.Fprintln(r.out, "-------")
	r.paramsShown = true
}

// derive computes and prints the public key of the hex encoded private key.
func (r *reporter) derive(privHex string) error {
	k, err := weierstrass.DecodeHex(privHex)
	if err != nil {
		return errors.Wrap(err, "private key")
	}
	pub, err := weierstrass.DerivePublicKey(r.curve, privHex)
	if err != nil {
		return errors.Wrapf(err, "deriving public key for %s", privHex)
	}

	if r.verbose && !r.paramsShown {
		r.params()
	}

	fmt.Fprintln(r.out, "private key:")
	fmt.Fprintf(r.out, "  %s (%d bits)\n", weierstrass.EncodeHex(k, 1), bitLen(k))

	fmt.Fprintln(r.out, "public key:")
	formatted := weierstrass.FormatPoint(pub, r.curve.FieldByteWidth())
	if formatted.Infinity {
		fmt.Fprintln(r.out, " *Point at Infinity*")
		return nil
	}
	fmt.Fprintf(r.out, " x = %s\n", formatted.X)
	fmt.Fprintf(r.out, " y = %s\n", formatted.Y)

	if !r.verbose {
		return nil
	}
	return r.encodings(pub)
}

// encodings prints the serialized forms of pub and the identifiers derived
// from its compressed serialization.
func (r *reporter) encodings(pub weierstrass.Point) error {
	compressed, err := weierstrass.EncodeCompressed(r.curve, pub)
	if err != nil {
		return errors.Wrap(err, "compressing public key")
	}
	uncompressed, err := weierstrass.EncodeUncompressed(r.curve, pub)
	if err != nil {
		return errors.Wrap(err, "encoding public key")
	}
	fmt.Fprintf(r.out, "compressed:   %s\n", compressed)
	fmt.Fprintf(r.out, "uncompressed: %s\n", uncompressed)

	serialized, err := hex.DecodeString(compressed)
	if err != nil {
		return errors.Wrap(err, "decoding compressed public key")
	}
	hash160, err := keyid.Hash160(serialized)
	if err != nil {
		return errors.Wrap(err, "hash160")
	}
	fingerprint, err := keyid.Fingerprint(serialized)
	if err != nil {
		return errors.Wrap(err, "fingerprint")
	}
	blake, err := keyid.Blake256(serialized)
	if err != nil {
		return errors.Wrap(err, "blake256")
	}
	addr, err := keyid.EncodeAddress(keyid.BitcoinMainnetPubKeyHash, serialized)
	if err != nil {
		return errors.Wrap(err, "address")
	}

	fmt.Fprintf(r.out, "hash160:      %x\n", hash160)
	fmt.Fprintf(r.out, "fingerprint:  %x\n", fingerprint[:])
	fmt.Fprintf(r.out, "blake256:     %s\n", hex.EncodeToString(blake[:]))
	fmt.Fprintf(r.out, "address:      %s\n", addr)
	return nil
}
