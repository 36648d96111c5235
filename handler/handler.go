package handler

import (
	"reflect"
	"sync"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
)

// Handler is the capability a sink must provide to be managed: emit an
// entry, carry its own level threshold and formatter, and release its
// resources on Close.
type Handler interface {
	// Handle emits a log entry if it passes the handler's level
	Handle(entry *core.Entry) error

	// SetLevel sets the minimum level the handler emits
	SetLevel(level core.Level)

	// Level returns the handler's current threshold
	Level() core.Level

	// SetFormatter replaces the formatter used to render entries
	SetFormatter(f formatter.Formatter)

	// Formatter returns the current formatter
	Formatter() formatter.Formatter

	// Close closes the handler and releases resources
	Close() error
}

// Protector is implemented by handlers wrapping a stream that must stay
// open for the life of the process, such as os.Stdout or os.Stderr.
type Protector interface {
	Protected() bool
}

// IsProtected reports whether h must never be closed on logger removal.
func IsProtected(h Handler) bool {
	p, ok := h.(Protector)
	return ok && p.Protected()
}

// IsNil reports whether v is nil or an interface holding a nil pointer.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Base holds the level, formatter and statistics shared by the built-in
// handlers. Embed it and call Accept at the top of Handle.
type Base struct {
	mu        sync.RWMutex
	level     core.Level
	formatter formatter.Formatter
	stats     Stats
}

// Init sets the initial threshold and formatter. A nil formatter falls
// back to formatter.Default().
func (b *Base) Init(level core.Level, f formatter.Formatter) {
	if IsNil(f) {
		f = formatter.Default()
	}
	b.level = level
	b.formatter = f
}

// SetLevel sets the handler threshold
func (b *Base) SetLevel(level core.Level) {
	b.mu.Lock()
	b.level = level
	b.mu.Unlock()
}

// Level returns the handler threshold
func (b *Base) Level() core.Level {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.level
}

// SetFormatter replaces the formatter; nil restores formatter.Default()
func (b *Base) SetFormatter(f formatter.Formatter) {
	if IsNil(f) {
		f = formatter.Default()
	}
	b.mu.Lock()
	b.formatter = f
	b.mu.Unlock()
}

// Formatter returns the current formatter
func (b *Base) Formatter() formatter.Formatter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.formatter == nil {
		return formatter.Default()
	}
	return b.formatter
}

// Accept reports whether an entry at level passes the threshold, and
// counts it as filtered otherwise.
func (b *Base) Accept(level core.Level) bool {
	if level < b.Level() {
		b.stats.IncrementFiltered()
		return false
	}
	return true
}

// Stats returns the handler's counters
func (b *Base) Stats() *Stats {
	return &b.stats
}
