package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ModChain/weierstrass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterDerive(t *testing.T) {
	curve, err := weierstrass.BuildCurve("0", "7", "2B", "1F", "0202")
	require.NoError(t, err)

	for _, key := range []string{"1", "2", "1e", "1F", "40"} {
		var out bytes.Buffer
		require.NoError(t, newReporter(&out, curve, false).derive(key))

		pub, err := weierstrass.DerivePublicKey(curve, key)
		require.NoError(t, err)
		formatted := weierstrass.FormatPoint(pub, curve.FieldByteWidth())
		if formatted.Infinity {
			assert.Contains(t, out.String(), " *Point at Infinity*\n", key)
		} else {
			assert.Contains(t, out.String(), " x = "+formatted.X+"\n y = "+formatted.Y+"\n", key)
		}
	}

	var out bytes.Buffer
	err = newReporter(&out, curve, true).derive("-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, weierstrass.ErrInvalidHexInput))
	assert.Empty(t, out.String(), "nothing is printed for a rejected key")
}
