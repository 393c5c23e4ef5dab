// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weierstrass

import (
	"fmt"
	"math/big"
	"strings"
)

// DecodeHex parses s as an unsigned big-endian hexadecimal integer.  Digits
// are accepted in either case; prefixes such as 0x, signs, whitespace and
// separators are rejected with ErrInvalidHexInput, as is the empty string.
func DecodeHex(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, makeError(ErrInvalidHexInput, "empty hex string")
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			str := fmt.Sprintf("invalid hex character %q at offset %d", s[i], i)
			return nil, makeError(ErrInvalidHexInput, str)
		}
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		str := fmt.Sprintf("malformed hex string %q", s)
		return nil, makeError(ErrInvalidHexInput, str)
	}
	return v, nil
}

// EncodeHex returns the lowercase hexadecimal representation of the
// non-negative integer v left padded with zeros to at least minWidth digits.
func EncodeHex(v *big.Int, minWidth int) string {
	s := v.Text(16)
	if len(s) >= minWidth {
		return s
	}
	return strings.Repeat("0", minWidth-len(s)) + s
}

// FieldByteWidth returns the number of bytes needed to hold any residue
// modulo p.  Coordinates are serialized with twice this many hex digits.
func FieldByteWidth(p *big.Int) int {
	return (p.BitLen() + 7) / 8
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
