package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// New builds a production SugaredLogger with the given level.
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	log, err := New(level)
	if err != nil {
		return err
	}
	Log = log
	return nil
}
