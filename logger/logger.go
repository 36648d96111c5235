package logger

import (
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/handler"
)

// state is shared by a Logger and the children created with With, so
// level and handler changes reach all of them.
type state struct {
	name     string
	mu       sync.RWMutex
	level    core.Level
	handlers []handler.Handler
}

// Logger is a named emitter of leveled records. Its level and handler
// list are mutable; a Manager keeps them in line with its own settings.
type Logger struct {
	*state
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handlers      []handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.NotSetLevel, // accept everything until configured
		callerSkip: 3,                // Default skip for getCaller
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler attaches a handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		state: &state{
			name:  b.name,
			level: b.level,
		},
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	for _, h := range b.handlers {
		l.AddHandler(h)
	}
	return l
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger threshold
func (l *Logger) Level() core.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel sets the logger threshold. Validation is the caller's job;
// Manager.SetLevel rejects levels outside the enumerated set.
func (l *Logger) SetLevel(level core.Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Enabled reports whether an entry at level passes the logger threshold.
// NOTSET accepts every level.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// AddHandler attaches h unless it is already attached.
func (l *Logger) AddHandler(h handler.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.handlers {
		if existing == h {
			return
		}
	}
	l.handlers = append(l.handlers, h)
}

// RemoveHandler detaches h and reports whether it was attached. The
// handler is not closed.
func (l *Logger) RemoveHandler(h handler.Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.handlers {
		if existing == h {
			l.handlers = append(l.handlers[:i:i], l.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// HasHandler reports whether h is attached
func (l *Logger) HasHandler(h handler.Handler) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, existing := range l.handlers {
		if existing == h {
			return true
		}
	}
	return false
}

// Handlers returns a copy of the attached handlers
func (l *Logger) Handlers() []handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]handler.Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// With creates a child Logger with additional fields. The child shares
// the parent's name, level and handlers.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		state:         l.state,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
	}
}

// AddCallerSkip returns a child that reports its caller n more frames up
// the stack, for helpers that log on behalf of their own caller.
func (l *Logger) AddCallerSkip(n int) *Logger {
	return &Logger{
		state:         l.state,
		fields:        l.fields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip + n,
	}
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields, "")
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...), nil, "")
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields, "")
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields, "")
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields, "")
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields, "")
}

// Critical logs a critical message. Unlike a fatal log it does not exit.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, fields, "")
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil, "")
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil, "")
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil, "")
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil, "")
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil, "")
}

// Exception logs msg at ERROR level with the error attached as a field
// and the current goroutine stack.
func (l *Logger) Exception(msg string, err error, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	all := make([]core.Field, 0, len(fields)+1)
	all = append(all, Err(err))
	all = append(all, fields...)
	l.log(core.ErrorLevel, msg, all, string(debug.Stack()))
}

// Handle dispatches an externally built entry to the attached handlers
// without checking the logger level. The entry's Name defaults to the
// logger name. The caller keeps ownership of entry.
func (l *Logger) Handle(entry *core.Entry) {
	if entry.Name == "" {
		entry.Name = l.name
	}
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	for _, h := range l.Handlers() {
		_ = h.Handle(entry)
	}
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, fields []core.Field, stack string) {
	handlers := l.Handlers()
	if len(handlers) == 0 {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Name = l.name
	entry.Message = msg
	entry.Stack = stack

	// Add logger's default fields
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}

	// Add provided fields
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	// Handler errors are counted in the handler's Stats and never reach
	// the call site.
	for _, h := range handlers {
		_ = h.Handle(entry)
	}

	core.PutEntry(entry)
}

// Close detaches and closes every handler that is not protected.
func (l *Logger) Close() error {
	var err error
	for _, h := range l.Handlers() {
		l.RemoveHandler(h)
		if handler.IsProtected(h) {
			continue
		}
		err = multierr.Append(err, h.Close())
	}
	return err
}
