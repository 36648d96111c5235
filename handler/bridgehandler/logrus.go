package bridgehandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

// Logrus forwards entries to a *logrus.Logger.
type Logrus struct {
	bridge
	log *logrus.Logger
}

// Make sure that Logrus is a handler.Handler.
var _ handler.Handler = (*Logrus)(nil)

// NewLogrus creates a bridge writing to l.
func NewLogrus(l *logrus.Logger) *Logrus {
	h := &Logrus{log: l}
	h.Init(core.NotSetLevel, nil)
	return h
}

// Handle writes the entry with its time and fields
func (h *Logrus) Handle(entry *core.Entry) error {
	if ok, err := h.accept(entry); !ok {
		return err
	}

	level := logrusLevel(entry.Level)
	if !h.log.IsLevelEnabled(level) {
		h.Stats().IncrementFiltered()
		return nil
	}

	fields := make(logrus.Fields, len(entry.Fields)+3)
	for _, f := range entry.Fields {
		fields[f.Key] = f.Value()
	}
	if entry.Name != "" {
		fields[LoggerKey] = entry.Name
	}
	if entry.Caller.Defined {
		fields[CallerKey] = callerString(entry.Caller)
	}
	if entry.Stack != "" {
		fields[StackKey] = entry.Stack
	}

	// Entry.Log only panics for PanicLevel and never exits
	logrus.NewEntry(h.log).
		WithTime(entry.Time).
		WithFields(fields).
		Log(level, entry.Message)
	h.Stats().IncrementProcessed()
	return nil
}

// Close marks the bridge closed. The logrus output is left open.
func (h *Logrus) Close() error {
	h.closed.Store(true)
	return nil
}

func logrusLevel(l core.Level) logrus.Level {
	switch {
	case l >= core.CriticalLevel:
		return logrus.FatalLevel
	case l >= core.ErrorLevel:
		return logrus.ErrorLevel
	case l >= core.WarnLevel:
		return logrus.WarnLevel
	case l >= core.InfoLevel:
		return logrus.InfoLevel
	case l >= core.DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
