package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "prepare")

	logger, err := New(Options{Dir: dir})
	require.NoError(t, err)

	Get(logger, CategoryConfig).Info("configuration saved", zap.String("path", "/w/config.yaml"))
	Get(logger, CategoryConfig).Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"msg":"configuration saved"`)
	assert.Contains(t, text, `"logger":"config"`)
	assert.Contains(t, text, `"path":"/w/config.yaml"`)
	assert.NotContains(t, text, "hidden at info level")
}

func TestNew_Debug(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Options{Dir: dir, File: "debug.log", Debug: true})
	require.NoError(t, err)

	logger.Debug("debug line")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "debug line"))
}

func TestNew_Quiet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	logger, err := New(Options{Dir: dir, Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "quiet mode must not create the log directory")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestGet_NilBase(t *testing.T) {
	l := Get(nil, CategoryDesign)
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
