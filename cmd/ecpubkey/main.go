package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

const appHelp = `Elliptic curve public key calculator.

The elliptic curve is y^2 = x^3 + ax + b and generating point G modulo p.
All numbers are specified in hex, including the private key. The private
key can be given as the last argument or read from stdin, one per line.`

type options struct {
	verbose    bool
	a, b, p, n string
	g          string
	strict     bool
	configFile string
	keys       []string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("ecpubkey", appHelp)
	app.Flag("verbose", "Verbose print.").Short('v').BoolVar(&opts.verbose)
	app.Flag("coef-a", "Curve coefficient a in hex.").Short('a').StringVar(&opts.a)
	app.Flag("coef-b", "Curve coefficient b in hex.").Short('b').StringVar(&opts.b)
	app.Flag("modulus", "Field modulus p in hex.").Short('p').StringVar(&opts.p)
	app.Flag("order", "Cycle length n of G in hex.").Short('n').StringVar(&opts.n)
	app.Flag("generator", "Generating point G as an encoded public key in hex.").Short('G').StringVar(&opts.g)
	app.Flag("strict", "Validate the curve parameters before use.").BoolVar(&opts.strict)
	app.Flag("config", "Config file (yaml, json or toml) holding a, b, p, n and g.").StringVar(&opts.configFile)
	app.Arg("private-key", "Private key in hex.").StringsVar(&opts.keys)
	return app
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "parsing arguments: %s. Try --help\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)
	defer logger.Sync()

	overrides := map[string]string{
		"a": opts.a,
		"b": opts.b,
		"p": opts.p,
		"n": opts.n,
		"g": opts.g,
	}
	cfg, err := loadConfig(opts.configFile, overrides, opts.strict)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitUsage
	}

	return exitCode(run(cfg, opts.keys, opts.verbose, stdin, stdout, logger))
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
