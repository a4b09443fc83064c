package logging_test

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/on-the-ground/switchcase/logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDevelopment_RespectsLevel(t *testing.T) {
	logger := logging.NewDevelopment(zapcore.InfoLevel)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	logger := logging.NewNop()
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	assert.NotPanics(t, func() { logging.Sync(logger) })
}

type failingSyncer struct {
	err error
}

func (f failingSyncer) Write(p []byte) (int, error) { return len(p), nil }

func (f failingSyncer) Sync() error { return f.err }

func loggerSyncingWith(err error) (*zap.Logger, *observer.ObservedLogs) {
	observed, logs := observer.New(zapcore.DebugLevel)
	failing := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		failingSyncer{err: err},
		zapcore.DebugLevel,
	)
	return zap.New(zapcore.NewTee(observed, failing)), logs
}

func TestSync_IgnoresUnsyncableTerminal(t *testing.T) {
	for _, errno := range []syscall.Errno{syscall.EINVAL, syscall.ENOTTY} {
		logger, logs := loggerSyncingWith(&os.PathError{Op: "sync", Path: "/dev/stdout", Err: errno})

		logging.Sync(logger)

		assert.Zero(t, logs.FilterMessage("failed to sync logger").Len(), errno.Error())
	}
}

func TestSync_ReportsRealFailures(t *testing.T) {
	logger, logs := loggerSyncingWith(errors.New("disk full"))

	logging.Sync(logger)

	assert.Equal(t, 1, logs.FilterMessage("failed to sync logger").Len())
}
