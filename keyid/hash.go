// Package keyid derives short identifiers from serialized public keys: the
// hash160 used by Bitcoin style addresses, the four byte fingerprint used by
// extended keys, and the BLAKE-256 digest used by Decred.
package keyid

import (
	"crypto/sha256"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Hash160Size is the size of a hash160 digest.
const Hash160Size = ripemd160.Size

func doubleSha256(in []byte) []byte {
	a := sha256.Sum256(in)
	a = sha256.Sum256(a[:])
	return a[:]
}

// ripemd160 + sha256
func rmd160sha256(in []byte) []byte {
	a := sha256.Sum256(in)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}

// Hash160 returns RIPEMD-160(SHA-256(pubKey)) of the serialized public key.
func Hash160(pubKey []byte) ([]byte, error) {
	if len(pubKey) == 0 {
		return nil, ErrEmptyKey
	}
	return rmd160sha256(pubKey), nil
}

// Fingerprint returns the first four bytes of the hash160 of the serialized
// public key, as used to identify parent keys in BIP32 extended keys.
func Fingerprint(pubKey []byte) ([4]byte, error) {
	var fp [4]byte
	h, err := Hash160(pubKey)
	if err != nil {
		return fp, err
	}
	copy(fp[:], h)
	return fp, nil
}

// Blake256 returns the BLAKE-256 digest of the serialized public key.
func Blake256(pubKey []byte) (chainhash.Hash, error) {
	if len(pubKey) == 0 {
		return chainhash.Hash{}, ErrEmptyKey
	}
	return chainhash.HashH(pubKey), nil
}
