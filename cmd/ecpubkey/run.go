package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ModChain/weierstrass"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitCurve    = 5
	exitUsage    = 6
	exitTooMany  = 8
	promptString = "Enter private key in hex or ^D to quit:"
)

// exitError carries the process exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCode maps the error returned by run to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func buildCurve(cfg *curveConfig) (*weierstrass.CurveParams, error) {
	var opts []weierstrass.CurveOption
	if cfg.Strict {
		opts = append(opts, weierstrass.WithStrictValidation())
	}
	curve, err := weierstrass.BuildCurve(cfg.A, cfg.B, cfg.P, cfg.N, cfg.G, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid curve")
	}
	return curve, nil
}

// run derives the public key of the single positional key, or of every line
// read from in when no key is given.
func run(cfg *curveConfig, keys []string, verbose bool, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if len(keys) > 1 {
		fmt.Fprintln(out, "Error: Too many arguments:")
		for _, arg := range keys {
			fmt.Fprintf(out, "  unknown argument %s\n", arg)
		}
		return withCode(exitTooMany, errors.Errorf("expected at most one private key, got %d", len(keys)))
	}

	curve, err := buildCurve(cfg)
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return withCode(exitCurve, err)
	}
	logger.Debug("curve loaded",
		zap.Int("fieldBytes", curve.FieldByteWidth()),
		zap.Bool("strict", cfg.Strict),
		zap.Stringer("G", curve.G()))

	rep := newReporter(out, curve, verbose)
	if len(keys) == 1 {
		if err := rep.derive(keys[0]); err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			return withCode(exitFailure, err)
		}
		return nil
	}

	fmt.Fprintln(out, promptString)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if err := rep.derive(line); err != nil {
			logger.Warn("skipping private key", zap.String("input", line), zap.Error(err))
			fmt.Fprintf(out, "Error: %s\n", err)
		}
		fmt.Fprintf(out, "\n%s\n", promptString)
	}
	if err := scanner.Err(); err != nil {
		return withCode(exitFailure, errors.Wrap(err, "reading private keys"))
	}
	fmt.Fprintln(out, "done")
	return nil
}
