package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ProvideLogger builds a console logger on stderr, so stdout stays free for
// generated output.
func ProvideLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// NewTestLogger returns a new logger and observed logs for testing.
func NewTestLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zap.DebugLevel)
	return zap.New(core).Sugar(), recorded
}

func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
