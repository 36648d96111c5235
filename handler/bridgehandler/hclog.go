package bridgehandler

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

// Hclog forwards entries to an hclog.Logger. Each entry is written
// through a sub-logger named after the entry's logger name.
type Hclog struct {
	bridge
	log   hclog.Logger
	named sync.Map // logger name -> hclog.Logger
}

// Make sure that Hclog is a handler.Handler.
var _ handler.Handler = (*Hclog)(nil)

// NewHclog creates a bridge writing to l.
func NewHclog(l hclog.Logger) *Hclog {
	h := &Hclog{log: l}
	h.Init(core.NotSetLevel, nil)
	return h
}

// Handle writes the entry as key/value pairs
func (h *Hclog) Handle(entry *core.Entry) error {
	if ok, err := h.accept(entry); !ok {
		return err
	}

	args := make([]interface{}, 0, 2*len(entry.Fields)+4)
	for _, f := range entry.Fields {
		args = append(args, f.Key, f.Value())
	}
	if entry.Caller.Defined {
		args = append(args, CallerKey, callerString(entry.Caller))
	}
	if entry.Stack != "" {
		args = append(args, StackKey, entry.Stack)
	}

	h.logger(entry.Name).Log(hclogLevel(entry.Level), entry.Message, args...)
	h.Stats().IncrementProcessed()
	return nil
}

// Close marks the bridge closed. hclog loggers hold no resources.
func (h *Hclog) Close() error {
	h.closed.Store(true)
	return nil
}

func (h *Hclog) logger(name string) hclog.Logger {
	if name == "" {
		return h.log
	}
	if l, ok := h.named.Load(name); ok {
		return l.(hclog.Logger)
	}
	l, _ := h.named.LoadOrStore(name, h.log.Named(name))
	return l.(hclog.Logger)
}

func hclogLevel(l core.Level) hclog.Level {
	switch {
	case l >= core.ErrorLevel:
		return hclog.Error
	case l >= core.WarnLevel:
		return hclog.Warn
	case l >= core.InfoLevel:
		return hclog.Info
	case l >= core.DebugLevel:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}
