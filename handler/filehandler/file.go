package filehandler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the handler threshold (default: NOTSET)
	Level core.Level
	// Truncate empties an existing file instead of appending to it
	Truncate bool
	// Delay postpones opening the file until the first entry is written
	Delay bool
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// FileHandler writes formatted entries to a single file. Every entry is
// written straight to the file, so nothing is lost if the process dies
// without calling Close.
type FileHandler struct {
	handler.Base
	mu       sync.Mutex
	filename string
	flag     int
	perm     os.FileMode
	file     *os.File
	closed   bool
}

// Make sure that FileHandler is a handler.Handler.
var _ handler.Handler = (*FileHandler)(nil)

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if handler.IsNil(cfg.Formatter) {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}
}

// NewFileHandler creates a new file handler. Unless Delay is set the file
// is opened immediately, creating missing parent directories.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filehandler: filename is required")
	}
	applyFileDefaults(&cfg)

	h := &FileHandler{
		filename: cfg.Filename,
		flag:     os.O_CREATE | os.O_WRONLY | os.O_APPEND,
		perm:     cfg.Perm,
	}
	if cfg.Truncate {
		h.flag = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	h.Init(cfg.Level, cfg.Formatter)

	if !cfg.Delay {
		if err := h.open(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// open creates the parent directory and opens the file. Callers hold mu
// or own h exclusively.
func (h *FileHandler) open() error {
	if err := os.MkdirAll(filepath.Dir(h.filename), 0o755); err != nil {
		return fmt.Errorf("filehandler: %w", err)
	}
	file, err := os.OpenFile(h.filename, h.flag, h.perm)
	if err != nil {
		return fmt.Errorf("filehandler: %w", err)
	}
	h.file = file
	return nil
}

// Handle formats and writes the entry when it passes the handler level.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if !h.Accept(entry.Level) {
		return nil
	}

	data, err := h.Formatter().Format(entry)
	if err != nil {
		h.Stats().Record(err)
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return core.ErrHandlerClosed
	}
	if h.file == nil {
		if err := h.open(); err != nil {
			h.Stats().Record(err)
			return err
		}
	}

	_, err = h.file.Write(data)
	h.Stats().Record(err)
	return err
}

// Filename returns the path of the log file
func (h *FileHandler) Filename() string {
	return h.filename
}

// Close syncs and closes the underlying file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil // Already closed
	}
	h.closed = true

	if h.file == nil {
		return nil
	}
	syncErr := h.file.Sync()
	closeErr := h.file.Close()
	h.file = nil
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}

// Closed reports whether Close has been called
func (h *FileHandler) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
