package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "warn")
	require.NoError(t, err)
	log.Info("skipped %d", 1)
	log.Warn("design=%s rejected", "d1")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "design=d1 rejected")
	assert.NotContains(t, string(data), "skipped")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewFromZap_Formats(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewFromZap(zap.New(core))

	log.Error("autosave failed: %v", "boom")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "autosave failed: boom", logs.All()[0].Message)
}
