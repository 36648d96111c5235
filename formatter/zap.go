package formatter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/epilog/core"
)

// ZapConfig configures a ZapFormatter.
type ZapConfig struct {
	// Console selects zap's console encoder instead of the JSON encoder
	Console bool
	// EncoderConfig replaces zap.NewProductionEncoderConfig when set
	EncoderConfig *zapcore.EncoderConfig
}

// ZapFormatter renders entries with a zapcore.Encoder, so records written
// through epilog handlers share the layout of zap-based services.
type ZapFormatter struct {
	encoder zapcore.Encoder
}

// NewZapFormatter creates a formatter backed by a zap encoder.
func NewZapFormatter(cfg ZapConfig) *ZapFormatter {
	var ec zapcore.EncoderConfig
	if cfg.EncoderConfig != nil {
		ec = *cfg.EncoderConfig
	} else {
		ec = zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeLevel = encodeZapLevel
	}

	if cfg.Console {
		return &ZapFormatter{encoder: zapcore.NewConsoleEncoder(ec)}
	}
	return &ZapFormatter{encoder: zapcore.NewJSONEncoder(ec)}
}

// Format encodes the entry through the zap encoder
func (f *ZapFormatter) Format(entry *core.Entry) ([]byte, error) {
	ze := zapcore.Entry{
		Level:      ZapLevel(entry.Level),
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

	buf, err := f.encoder.EncodeEntry(ze, ZapFields(entry.Fields))
	if err != nil {
		return nil, err
	}
	defer buf.Free()

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// ZapLevel maps CRITICAL onto DPanicLevel, which the default encoder prints as
// "critical". Encoding never panics.
func ZapLevel(l core.Level) zapcore.Level {
	switch {
	case l >= core.CriticalLevel:
		return zapcore.DPanicLevel
	case l >= core.ErrorLevel:
		return zapcore.ErrorLevel
	case l >= core.WarnLevel:
		return zapcore.WarnLevel
	case l >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func encodeZapLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == zapcore.DPanicLevel {
		enc.AppendString("critical")
		return
	}
	zapcore.LowercaseLevelEncoder(l, enc)
}

// ZapFields converts entry fields to zap fields.
func ZapFields(fields []core.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType:
			out = append(out, zap.String(f.Key, f.Str))
		case core.IntType, core.Int64Type:
			out = append(out, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			out = append(out, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			out = append(out, zap.Bool(f.Key, f.Int64 == 1))
		case core.TimeType:
			out = append(out, zap.Time(f.Key, time.Unix(0, f.Int64)))
		case core.DurationType:
			out = append(out, zap.Duration(f.Key, time.Duration(f.Int64)))
		case core.ErrorType:
			out = append(out, zap.String(f.Key, f.Str))
		default:
			out = append(out, zap.Any(f.Key, f.Any))
		}
	}
	return out
}
