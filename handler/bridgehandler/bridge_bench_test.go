package bridgehandler

import (
	"io"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
	"github.com/philipp01105/epilog/handler/consolehandler"
	"github.com/philipp01105/epilog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every library (io.Discard)
// ---------------------------------------------------------------------------

func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

func newHclogLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, JSONFormat: true, Level: hclog.Debug})
}

// bridged returns a registry logger whose stream is h.
func bridged(b *testing.B, h handler.Handler) *logger.Logger {
	b.Helper()
	m, err := logger.NewManager(
		logger.WithNamespace(logger.NewNamespace()),
		logger.WithStream(h),
		logger.WithLevel(core.DebugLevel),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = m.Close() })
	return m.GetLogger("bench")
}

func benchInfo(b *testing.B, l *logger.Logger, fields ...core.Field) {
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request handled", fields...)
	}
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, no fields
// ---------------------------------------------------------------------------

func BenchmarkBridge_InfoNoFields(b *testing.B) {
	b.Run("epilog-json", func(b *testing.B) {
		benchInfo(b, bridged(b, consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    io.Discard,
			Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		})))
	})

	b.Run("zap-direct", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled")
		}
	})

	b.Run("zap-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewZap(newZapLogger())))
	})

	b.Run("zerolog-direct", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("request handled")
		}
	})

	b.Run("zerolog-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewZerolog(newZerologLogger())))
	})

	b.Run("logrus-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewLogrus(newLogrusLogger())))
	})

	b.Run("hclog-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewHclog(newHclogLogger())))
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Structured logging with common fields
// ---------------------------------------------------------------------------

func BenchmarkBridge_InfoWithFields(b *testing.B) {
	fields := []core.Field{
		logger.String("method", "GET"),
		logger.String("path", "/api/users"),
		logger.Int("status", 200),
		logger.Float64("latency_ms", 1.25),
	}

	b.Run("zap-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewZap(newZapLogger())), fields...)
	})

	b.Run("zerolog-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewZerolog(newZerologLogger())), fields...)
	})

	b.Run("logrus-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewLogrus(newLogrusLogger())), fields...)
	})

	b.Run("hclog-bridged", func(b *testing.B) {
		benchInfo(b, bridged(b, NewHclog(newHclogLogger())), fields...)
	})
}
