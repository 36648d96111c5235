package bridgehandler

import (
	"strconv"
	"sync/atomic"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

const (
	// LoggerKey carries the entry's logger name in libraries without
	// named loggers.
	LoggerKey = "logger"
	// CallerKey carries "file:line" when the entry has caller information.
	CallerKey = "caller"
	// StackKey carries the stack trace of an exception entry.
	StackKey = "stack"
)

// bridge holds the state shared by every bridge handler.
type bridge struct {
	handler.Base
	closed atomic.Bool
}

// accept reports whether the entry should be forwarded
func (b *bridge) accept(entry *core.Entry) (bool, error) {
	if b.closed.Load() {
		return false, core.ErrHandlerClosed
	}
	if !b.Accept(entry.Level) {
		return false, nil
	}
	return true, nil
}

func callerString(c core.CallerInfo) string {
	return c.ShortFile + ":" + strconv.Itoa(c.Line)
}
