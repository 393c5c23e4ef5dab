package keyid

import (
	"errors"
)

var (
	ErrEmptyKey          = errors.New("serialized public key is empty")
	ErrInvalidAddress    = errors.New("address is not valid base58")
	ErrInvalidAddressLen = errors.New("decoded address length is invalid")
	ErrBadChecksum       = errors.New("bad address checksum")
)
