package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "ECPUBKEY"

// secp256k1 domain parameters used when nothing else is configured.
const (
	secp256k1A = "0"
	secp256k1B = "7"
	secp256k1P = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	secp256k1N = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	secp256k1G = "0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
)

// curveConfig holds the hex encoded curve description the tool operates on.
type curveConfig struct {
	A, B, P, N, G string
	Strict        bool
}

// loadConfig resolves the curve description.  Later sources win: built in
// secp256k1 defaults, the optional config file, ECPUBKEY_* environment
// variables and finally the non-empty entries of overrides.
func loadConfig(configFile string, overrides map[string]string, strict bool) (*curveConfig, error) {
	v := viper.New()
	v.SetDefault("a", secp256k1A)
	v.SetDefault("b", secp256k1B)
	v.SetDefault("p", secp256k1P)
	v.SetDefault("n", secp256k1N)
	v.SetDefault("g", secp256k1G)
	v.SetDefault("strict", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}

	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}
	if strict {
		v.Set("strict", true)
	}

	return &curveConfig{
		A:      v.GetString("a"),
		B:      v.GetString("b"),
		P:      v.GetString("p"),
		N:      v.GetString("n"),
		G:      v.GetString("g"),
		Strict: v.GetBool("strict"),
	}, nil
}
