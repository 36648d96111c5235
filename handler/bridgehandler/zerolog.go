package bridgehandler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

// Zerolog forwards entries to a zerolog.Logger.
type Zerolog struct {
	bridge
	log zerolog.Logger
}

// Make sure that Zerolog is a handler.Handler.
var _ handler.Handler = (*Zerolog)(nil)

// NewZerolog creates a bridge writing to l.
func NewZerolog(l zerolog.Logger) *Zerolog {
	z := &Zerolog{log: l}
	z.Init(core.NotSetLevel, nil)
	return z
}

// Handle writes the entry as a zerolog event. The entry time is written
// under zerolog.TimestampFieldName.
func (z *Zerolog) Handle(entry *core.Entry) error {
	if ok, err := z.accept(entry); !ok {
		return err
	}

	// WithLevel never exits or panics, even for the fatal level
	ev := z.log.WithLevel(zerologLevel(entry.Level))
	if ev == nil {
		z.Stats().IncrementFiltered()
		return nil
	}

	ev = ev.Time(zerolog.TimestampFieldName, entry.Time)
	if entry.Name != "" {
		ev = ev.Str(LoggerKey, entry.Name)
	}
	for _, f := range entry.Fields {
		switch f.Type {
		case core.StringType:
			ev = ev.Str(f.Key, f.Str)
		case core.IntType, core.Int64Type:
			ev = ev.Int64(f.Key, f.Int64)
		case core.Float64Type:
			ev = ev.Float64(f.Key, f.Float64)
		case core.BoolType:
			ev = ev.Bool(f.Key, f.Int64 == 1)
		case core.TimeType:
			ev = ev.Time(f.Key, time.Unix(0, f.Int64))
		case core.DurationType:
			ev = ev.Dur(f.Key, time.Duration(f.Int64))
		case core.ErrorType:
			ev = ev.Str(f.Key, f.Str)
		default:
			ev = ev.Interface(f.Key, f.Any)
		}
	}
	if entry.Caller.Defined {
		ev = ev.Str(zerolog.CallerFieldName, callerString(entry.Caller))
	}
	if entry.Stack != "" {
		ev = ev.Str(zerolog.ErrorStackFieldName, entry.Stack)
	}

	ev.Msg(entry.Message)
	z.Stats().IncrementProcessed()
	return nil
}

// Close marks the bridge closed. The zerolog writer is left open.
func (z *Zerolog) Close() error {
	z.closed.Store(true)
	return nil
}

func zerologLevel(l core.Level) zerolog.Level {
	switch {
	case l >= core.CriticalLevel:
		return zerolog.FatalLevel
	case l >= core.ErrorLevel:
		return zerolog.ErrorLevel
	case l >= core.WarnLevel:
		return zerolog.WarnLevel
	case l >= core.InfoLevel:
		return zerolog.InfoLevel
	case l >= core.DebugLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
