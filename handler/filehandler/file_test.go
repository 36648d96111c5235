package filehandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
)

func newEntry(level core.Level, msg string) *core.Entry {
	entry := core.GetEntry()
	entry.Level = level
	entry.Name = "file"
	entry.Message = msg
	return entry
}

func plain() formatter.Formatter {
	return formatter.NewTextFormatter(formatter.Config{Template: "{level} {message}"})
}

func TestFileHandler_Write(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "app.log")

	h, err := NewFileHandler(FileConfig{Filename: filename, Formatter: plain()})
	require.NoError(t, err)
	assert.Equal(t, filename, h.Filename())

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "first")))
	require.NoError(t, h.Handle(newEntry(core.ErrorLevel, "second")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "INFO first\nERROR second\n", string(data))
}

func TestFileHandler_AppendAndTruncate(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(filename, []byte("existing\n"), 0o644))

	h, err := NewFileHandler(FileConfig{Filename: filename, Formatter: plain()})
	require.NoError(t, err)
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "appended")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "existing\nINFO appended\n", string(data))

	h, err = NewFileHandler(FileConfig{Filename: filename, Formatter: plain(), Truncate: true})
	require.NoError(t, err)
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "fresh")))
	require.NoError(t, h.Close())

	data, err = os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "INFO fresh\n", string(data))
}

func TestFileHandler_Delay(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "delayed.log")

	h, err := NewFileHandler(FileConfig{Filename: filename, Formatter: plain(), Delay: true, Level: core.WarnLevel})
	require.NoError(t, err)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "filtered")))
	_, err = os.Stat(filename)
	assert.True(t, os.IsNotExist(err), "file must not exist before the first accepted entry")

	require.NoError(t, h.Handle(newEntry(core.WarnLevel, "opened")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "WARN opened\n", string(data))
}

func TestFileHandler_Close(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "c.log")})
	require.NoError(t, err)

	assert.False(t, h.Closed())
	require.NoError(t, h.Close())
	assert.True(t, h.Closed())
	assert.NoError(t, h.Close())

	assert.ErrorIs(t, h.Handle(newEntry(core.ErrorLevel, "late")), core.ErrHandlerClosed)
}

func TestFileHandler_RequiresFilename(t *testing.T) {
	_, err := NewFileHandler(FileConfig{})
	assert.Error(t, err)
}
