package bridgehandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
)

// Zap forwards entries to the core of a *zap.Logger.
type Zap struct {
	bridge
	zcore zapcore.Core
	log   *zap.Logger
}

// Make sure that Zap is a handler.Handler.
var _ handler.Handler = (*Zap)(nil)

// NewZap creates a bridge writing through l's core.
func NewZap(l *zap.Logger) *Zap {
	z := &Zap{zcore: l.Core(), log: l}
	z.Init(core.NotSetLevel, nil)
	return z
}

// Handle writes the entry through the zap core, keeping its time, name
// and caller.
func (z *Zap) Handle(entry *core.Entry) error {
	if ok, err := z.accept(entry); !ok {
		return err
	}

	ze := zapcore.Entry{
		Level:      formatter.ZapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Name,
		Message:    entry.Message,
		Stack:      entry.Stack,
	}
	if entry.Caller.Defined {
		ze.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}

	ce := z.zcore.Check(ze, nil)
	if ce == nil {
		z.Stats().IncrementFiltered()
		return nil
	}
	ce.Write(formatter.ZapFields(entry.Fields)...)
	z.Stats().IncrementProcessed()
	return nil
}

// Close flushes the zap logger
func (z *Zap) Close() error {
	if z.closed.Swap(true) {
		return nil
	}
	return z.log.Sync()
}
