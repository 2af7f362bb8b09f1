package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/phonex/logger"
)

func TestNewAndBasicMethods(t *testing.T) {
	for _, env := range []string{"development", "debug", "production", "unknown"} {
		log, err := logger.New("svc", env)
		require.NoError(t, err)
		require.NotNil(t, log)

		log.Info("info")
		log.Warnf("warnf: %s", "ok")
		log.Debugw("debugw", "key", "value")
		log.Infow("env", "env", env)
		log.SafeSync()
	}
}

func TestWithFileWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "phone_parser.log")

	log, err := logger.New("phonex", "production", logger.WithFile(logger.FileConfig{
		Path:       path,
		MaxSizeMB:  1,
		MaxAgeDays: 7,
		Compress:   true,
	}))
	require.NoError(t, err)

	log.Infow("unique numbers found", "count", 2, "status", "success")
	log.Debugw("dropped at info level")
	log.SafeSync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"msg":"unique numbers found"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"logger":"phonex"`)
	assert.Contains(t, out, `"count":2`)
	assert.NotContains(t, out, "dropped at info level")
}

func TestWithFileConsoleEncodingHasNoColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")

	log, err := logger.New("phonex", "development", logger.WithFile(logger.FileConfig{Path: path, MaxSizeMB: 1}))
	require.NoError(t, err)

	log.Warnw("invalid phone number", "candidate", "812345")
	log.SafeSync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	log.Infow("nothing")
	log.SafeSync()
}

func TestLoggerInterfaceCompliance(t *testing.T) {
	log, err := logger.New("test-service", "production")
	require.NoError(t, err)

	var _ logger.LoggerInterface = log
	var _ logger.LoggerInterface = log.With("key", "value")
}
