package logger

import (
	"sync"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

// recordingHandler keeps copies of every accepted entry.
type recordingHandler struct {
	handler.Base
	mu        sync.Mutex
	entries   []core.Entry
	closes    int
	closeErr  error
	protected bool
}

func newRecordingHandler() *recordingHandler {
	h := &recordingHandler{}
	h.Init(core.NotSetLevel, nil)
	return h
}

func (h *recordingHandler) Handle(entry *core.Entry) error {
	if !h.Accept(entry.Level) {
		return nil
	}
	e := *entry
	e.Fields = append([]core.Field(nil), entry.Fields...)
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closes++
	return h.closeErr
}

func (h *recordingHandler) Protected() bool {
	return h.protected
}

func (h *recordingHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]core.Entry(nil), h.entries...)
}

func (h *recordingHandler) Messages() []string {
	var out []string
	for _, e := range h.Entries() {
		out = append(out, e.Message)
	}
	return out
}

func (h *recordingHandler) CloseCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closes
}
