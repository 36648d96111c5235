package consolehandler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter, colorized on a terminal)
	Formatter formatter.Formatter
	// Level is the handler threshold (default: NOTSET)
	Level core.Level
	// Protected keeps Close from ever being treated as releasing the
	// writer. Always true for os.Stdin, os.Stdout and os.Stderr.
	Protected bool
}

// ConsoleHandler writes formatted entries to an io.Writer. Writes are
// serialized with a mutex so one handler can be shared by many loggers.
type ConsoleHandler struct {
	handler.Base
	mu        sync.Mutex
	writer    io.Writer
	protected bool
	closed    atomic.Bool
}

// Make sure that ConsoleHandler is a handler.Handler.
var _ handler.Handler = (*ConsoleHandler)(nil)

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if handler.IsNil(cfg.Formatter) {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Colorize: isTerminal(cfg.Writer)})
	}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		protected: cfg.Protected || isStdStream(cfg.Writer),
	}
	h.Init(cfg.Level, cfg.Formatter)
	return h
}

// Handle formats and writes the entry when it passes the handler level.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return core.ErrHandlerClosed
	}
	if !h.Accept(entry.Level) {
		return nil
	}

	f := h.Formatter()
	if wf, ok := f.(formatter.WriterFormatter); ok {
		h.mu.Lock()
		err := wf.FormatTo(entry, h.writer)
		h.mu.Unlock()
		h.Stats().Record(err)
		return err
	}

	data, err := f.Format(entry)
	if err != nil {
		h.Stats().Record(err)
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(data)
	h.mu.Unlock()
	h.Stats().Record(err)
	return err
}

// Writer returns the destination writer
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Protected reports whether the writer is a process standard stream or
// was configured as protected.
func (h *ConsoleHandler) Protected() bool {
	return h.protected
}

// Flush flushes writers that buffer output, such as *bufio.Writer.
func (h *ConsoleHandler) Flush() error {
	fl, ok := h.writer.(interface{ Flush() error })
	if !ok {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return fl.Flush()
}

// Close flushes the writer and stops the handler. The writer itself is
// owned by the caller and stays open.
func (h *ConsoleHandler) Close() error {
	if h.closed.Swap(true) {
		return nil // Already closed
	}
	return h.Flush()
}

// Closed reports whether Close has been called
func (h *ConsoleHandler) Closed() bool {
	return h.closed.Load()
}

// isStdStream reports whether w is one of the process standard streams.
func isStdStream(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr || f == os.Stdin)
}

// isTerminal reports whether w is a terminal, enabling colored output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
