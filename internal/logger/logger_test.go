package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledByDefault(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, zerolog.Nop().GetLevel())
	assert.NotPanics(t, func() { Info().Msg("ignored") })
}

func TestInitLevels(t *testing.T) {
	Init(false)
	assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())

	Init(true)
	assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())
}

func TestInitWithFileWritesJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitWithFile(false, dir, FileConfig{}))
	t.Cleanup(func() { _ = CloseFileWriter() })

	assert.Equal(t, filepath.Join(dir, FileName), FilePath())

	SetInteractiveMode(true)
	t.Cleanup(func() { SetInteractiveMode(false) })
	Info().Str("round", "r1").Msg("round started")

	require.NoError(t, CloseFileWriter())
	assert.Empty(t, FilePath())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"round":"r1"`)
	assert.Contains(t, string(data), `"message":"round started"`)
}

func TestInitWithFileEmptyDir(t *testing.T) {
	require.NoError(t, InitWithFile(true, "", FileConfig{}))
	assert.Empty(t, FilePath())
	assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())
}

func TestFileConfigDefaults(t *testing.T) {
	var c FileConfig
	assert.Equal(t, 10, c.maxSizeMB())
	assert.Equal(t, 7, c.maxAgeDays())
	assert.Equal(t, 3, c.maxBackups())

	c = FileConfig{MaxSizeMB: 1, MaxAgeDays: 2, MaxBackups: 5}
	assert.Equal(t, 1, c.maxSizeMB())
	assert.Equal(t, 2, c.maxAgeDays())
	assert.Equal(t, 5, c.maxBackups())
}
