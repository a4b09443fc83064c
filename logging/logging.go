// Package logging builds the zap loggers used by switches and the examples.
package logging

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// NewDevelopment returns a human-readable console logger writing to stdout at
// the given level.
func NewDevelopment(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}

// Sync flushes logger, reporting a failure through the logger itself.
// Terminals and pipes cannot be synced; those failures are ignored.
func Sync(logger *zap.Logger) {
	var errs error
	for _, err := range multierr.Errors(logger.Sync()) {
		if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
			continue
		}
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		logger.Warn("failed to sync logger", zap.Error(errs))
	}
}
