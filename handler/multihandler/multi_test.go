package multihandler

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
	"github.com/philipp01105/epilog/handler/consolehandler"
)

func newConsole(buf *bytes.Buffer) *consolehandler.ConsoleHandler {
	return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{Template: "{message}"}),
	})
}

func newEntry(level core.Level, msg string) *core.Entry {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	return entry
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	multi := NewMultiHandler(newConsole(&buf1), newConsole(&buf2))
	defer multi.Close()

	require.NoError(t, multi.Handle(newEntry(core.InfoLevel, "multi test")))

	assert.Equal(t, "multi test\n", buf1.String())
	assert.Equal(t, "multi test\n", buf2.String())
}

func TestMultiHandler_CascadesLevelAndFormatter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h1, h2 := newConsole(&buf1), newConsole(&buf2)
	multi := NewMultiHandler(h1, h2)

	multi.SetLevel(core.ErrorLevel)
	assert.Equal(t, core.ErrorLevel, h1.Level())
	assert.Equal(t, core.ErrorLevel, h2.Level())

	jf := formatter.NewJSONFormatter(formatter.Config{})
	multi.SetFormatter(jf)
	assert.Same(t, jf, h1.Formatter())
	assert.Same(t, jf, h2.Formatter())

	require.NoError(t, multi.Handle(newEntry(core.WarnLevel, "filtered")))
	assert.Empty(t, buf1.String())
}

type brokenHandler struct {
	handler.Base
}

func (b *brokenHandler) Handle(*core.Entry) error { return errors.New("handle failed") }
func (b *brokenHandler) Close() error             { return errors.New("close failed") }

func TestMultiHandler_Errors(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiHandler(&brokenHandler{}, newConsole(&buf), &brokenHandler{})

	err := multi.Handle(newEntry(core.InfoLevel, "partial"))
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, "partial\n", buf.String())

	assert.Len(t, multierr.Errors(multi.Close()), 2)
}

func TestMultiHandler_CloseSkipsProtected(t *testing.T) {
	var buf bytes.Buffer
	std := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stderr})
	owned := newConsole(&buf)

	multi := NewMultiHandler(std, owned)
	require.NoError(t, multi.Close())

	assert.False(t, std.Closed())
	assert.True(t, owned.Closed())
	assert.Len(t, multi.Handlers(), 2)
}
