package main

import (
	"io"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a logfmt encoded logger writing to w.  Only warnings and
// errors are emitted unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(zaplogfmt.NewEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core).Named("ecpubkey")
}
