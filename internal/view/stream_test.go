package view

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/drawnumber/internal/model"
)

func TestStreamOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.SetObserver(&recorder{})
	s.Start()

	s.Result(model.TooLow)
	s.Result(model.Correct)
	s.NumberIncorrect()
	s.DisplayError("minimum=5 maximum=1 attempts=3")

	want := "Result: Your guess is too low\n" +
		"Result: You won!\n" +
		incorrectText + "\n" +
		"Error: minimum=5 maximum=1 attempts=3\n"
	assert.Equal(t, want, buf.String())
	assert.NoError(t, s.Close())
}

func TestFileStreamTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.log")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	s, err := NewFileStream(path)
	require.NoError(t, err)
	s.Result(model.NoAttemptsLeft)
	require.NoError(t, s.Close())

	// writes after Close are dropped
	s.Result(model.Correct)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Result: You lost: no attempts left\n", string(data))
}

func TestFileStreamBadPath(t *testing.T) {
	_, err := NewFileStream(filepath.Join(t.TempDir(), "missing", "output.log"))
	assert.Error(t, err)
}
