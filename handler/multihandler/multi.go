package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
)

// MultiHandler sends log entries to multiple handlers. Level and
// formatter changes are pushed down to every child, so a Manager
// cascade reaches them too.
type MultiHandler struct {
	handler.Base
	handlers []handler.Handler
}

// Make sure that MultiHandler is a handler.Handler.
var _ handler.Handler = (*MultiHandler)(nil)

// NewMultiHandler creates a new multi-handler. The children keep their
// own levels and formatters until SetLevel or SetFormatter is called.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: handlers}
	m.Init(core.NotSetLevel, nil)
	return m
}

// Handle processes a log entry by sending it to all handlers
func (m *MultiHandler) Handle(entry *core.Entry) error {
	if !m.Accept(entry.Level) {
		return nil
	}
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	m.Stats().Record(err)
	return err
}

// SetLevel sets the threshold of the multi-handler and of every child
func (m *MultiHandler) SetLevel(level core.Level) {
	m.Base.SetLevel(level)
	for _, h := range m.handlers {
		h.SetLevel(level)
	}
}

// SetFormatter sets the formatter of every child
func (m *MultiHandler) SetFormatter(f formatter.Formatter) {
	m.Base.SetFormatter(f)
	f = m.Base.Formatter()
	for _, h := range m.handlers {
		h.SetFormatter(f)
	}
}

// Handlers returns a copy of the child handlers
func (m *MultiHandler) Handlers() []handler.Handler {
	out := make([]handler.Handler, len(m.handlers))
	copy(out, m.handlers)
	return out
}

// Close closes every child that is not protected
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		if handler.IsProtected(h) {
			continue
		}
		err = multierr.Append(err, h.Close())
	}
	return err
}
