package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_FileOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: "json", LogDir: dir, Level: "debug"}))
	defer func() { _ = Init(LogOption{}) }()

	Infof("[Test] derived address=%s bump=%d", "abc", 254)
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "derived address=abc bump=254")
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestInit_LevelFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: "console", LogDir: dir, Level: "warn"}))
	defer func() { _ = Init(LogOption{}) }()

	Infof("hidden message")
	Warnf("visible message")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden message")
	assert.Contains(t, string(data), "visible message")
}

func TestInit_InvalidOption(t *testing.T) {
	assert.Error(t, Init(LogOption{Level: "verbose"}))
	assert.Error(t, Init(LogOption{Format: "xml"}))
}
