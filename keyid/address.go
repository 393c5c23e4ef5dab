package keyid

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// AddressVersion is the leading byte of a base58check pay-to-pubkey-hash
// address and identifies the network.
type AddressVersion byte

const (
	// BitcoinMainnetPubKeyHash is the version of mainnet addresses, which
	// start with 1.
	BitcoinMainnetPubKeyHash AddressVersion = 0x00

	// BitcoinTestnetPubKeyHash is the version of testnet and regtest
	// addresses, which start with m or n.
	BitcoinTestnetPubKeyHash AddressVersion = 0x6f
)

const checksumLen = 4

// addressLen is the decoded length: version (1) || hash160 (20) || checksum (4)
const addressLen = 1 + Hash160Size + checksumLen

// EncodeAddress returns the base58check pay-to-pubkey-hash address of the
// serialized public key.  Compressed and uncompressed serializations of the same
// point have different addresses.
func EncodeAddress(version AddressVersion, pubKey []byte) (string, error) {
	h, err := Hash160(pubKey)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, addressLen)
	payload = append(payload, byte(version))
	payload = append(payload, h...)
	checkSum := doubleSha256(payload)[:checksumLen]
	payload = append(payload, checkSum...)
	return base58.Encode(payload), nil
}

// DecodeAddress parses a base58check pay-to-pubkey-hash address and returns
// its version and hash160 after verifying the checksum.
func DecodeAddress(addr string) (AddressVersion, []byte, error) {
	bin := base58.Decode(addr)
	if len(bin) == 0 {
		return 0, nil, ErrInvalidAddress
	}
	if len(bin) != addressLen {
		return 0, nil, ErrInvalidAddressLen
	}

	// Split the payload and checksum up and ensure the checksum matches.
	payload := bin[:len(bin)-checksumLen]
	checkSum := bin[len(bin)-checksumLen:]
	expectedCheckSum := doubleSha256(payload)[:checksumLen]
	if !bytes.Equal(checkSum, expectedCheckSum) {
		return 0, nil, ErrBadChecksum
	}

	return AddressVersion(payload[0]), payload[1:], nil
}
