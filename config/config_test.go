package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler/consolehandler"
	"github.com/philipp01105/epilog/handler/filehandler"
	"github.com/philipp01105/epilog/logger"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, &Config{Level: "INFO", Format: FormatText, Output: OutputStderr}, cfg)
	})

	t.Run("values from environment", func(t *testing.T) {
		t.Setenv("EPILOG_LEVEL", "debug")
		t.Setenv("EPILOG_FORMAT", "json")
		t.Setenv("EPILOG_TEMPLATE", "{level} {message}")
		t.Setenv("EPILOG_TIMESTAMP_FORMAT", "15:04")
		t.Setenv("EPILOG_OUTPUT", "stdout")
		t.Setenv("EPILOG_COLOR", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, &Config{
			Level:           "debug",
			Format:          FormatJSON,
			Template:        "{level} {message}",
			TimestampFormat: "15:04",
			Output:          OutputStdout,
			Color:           true,
		}, cfg)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("EPILOG_LEVEL", "LOUD")

		_, err := Load()
		assert.ErrorIs(t, err, ErrParsingConfig)
		assert.ErrorIs(t, err, core.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Setenv("EPILOG_FORMAT", "xml")

		_, err := Load()
		assert.ErrorIs(t, err, ErrParsingConfig)
		assert.ErrorContains(t, err, "EPILOG_FORMAT")
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("EPILOG_COLOR", "maybe")

		_, err := Load()
		assert.ErrorIs(t, err, ErrParsingConfig)
	})
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"EPILOG_LEVEL": "40", "EPILOG_FORMAT": "zap-json"})
	require.NoError(t, err)

	level, err := cfg.ParsedLevel()
	require.NoError(t, err)
	assert.Equal(t, core.ErrorLevel, level)
	assert.IsType(t, &formatter.ZapFormatter{}, cfg.Formatter())

	_, err = LoadFrom(map[string]string{"EPILOG_OUTPUT": " "})
	assert.ErrorIs(t, err, ErrParsingConfig)
}

func TestConfig_Formatter(t *testing.T) {
	tests := map[string]interface{}{
		FormatText:       &formatter.TextFormatter{},
		FormatJSON:       &formatter.JSONFormatter{},
		FormatZapJSON:    &formatter.ZapFormatter{},
		FormatZapConsole: &formatter.ZapFormatter{},
	}
	for format, want := range tests {
		assert.IsType(t, want, Config{Format: format}.Formatter(), format)
	}

	tf := Config{Format: FormatText, Template: "{message}"}.Formatter().(*formatter.TextFormatter)
	assert.Equal(t, "{message}", tf.Template)
}

func TestConfig_Stream(t *testing.T) {
	h, err := Config{Output: "STDOUT"}.Stream()
	require.NoError(t, err)
	ch, ok := h.(*consolehandler.ConsoleHandler)
	require.True(t, ok)
	assert.Same(t, os.Stdout, ch.Writer())

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	h, err = Config{Output: path}.Stream()
	require.NoError(t, err)
	fh, ok := h.(*filehandler.FileHandler)
	require.True(t, ok)
	assert.Equal(t, path, fh.Filename())
	require.NoError(t, fh.Close())
}

func TestNewManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("EPILOG_LEVEL", "WARNING")
	t.Setenv("EPILOG_OUTPUT", path)
	t.Setenv("EPILOG_TEMPLATE", "{name} {level} {message}")

	m, err := NewManager(logger.WithNamespace(logger.NewNamespace()))
	require.NoError(t, err)

	log := m.GetLogger("cfg")
	log.Info("dropped")
	log.Warn("written")
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cfg WARN written\n", string(data))
}

func TestNewManager_ClosesStreamOnError(t *testing.T) {
	if _, err := os.Stat("/proc/self/fd"); err != nil {
		t.Skip("needs /proc/self/fd")
	}
	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("EPILOG_OUTPUT", path)

	m, err := NewManager(logger.WithNamespace(logger.NewNamespace()), logger.WithLevel(logger.Level(15)))
	require.ErrorIs(t, err, core.ErrInvalidLevel)
	assert.Nil(t, m)

	_, err = os.Stat(path)
	require.NoError(t, err, "the output file was opened")
	assert.NotContains(t, openFiles(t), path)
}

// openFiles lists the paths of the files this process holds open.
func openFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil {
			out = append(out, target)
		}
	}
	return out
}
