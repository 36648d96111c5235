package logger

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
	"github.com/philipp01105/epilog/handler/consolehandler"
)

// Manager centralizes the level, formatter and output stream of a set of
// named loggers. Every setter validates first and then applies the new
// value to every registered logger and to every handler attached to
// them, so all loggers always share the Manager's settings.
//
// A Manager is not safe for concurrent mutation; callers that configure
// it from several goroutines must serialize access themselves. Logging
// through the loggers it hands out is safe from any goroutine.
type Manager struct {
	level     core.Level
	formatter formatter.Formatter
	stream    handler.Handler
	loggers   map[string]*Logger
	namespace *Namespace
}

type options struct {
	level     core.Level
	stream    handler.Handler
	formatter formatter.Formatter
	namespace *Namespace
}

// Option configures a Manager
type Option func(*options)

// WithLevel sets the initial level (default: INFO)
func WithLevel(level core.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithStream sets the initial output handler (default: a console
// handler on os.Stderr)
func WithStream(h handler.Handler) Option {
	return func(o *options) {
		o.stream = h
	}
}

// WithFormatter sets the initial formatter (default: formatter.Default())
func WithFormatter(f formatter.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithNamespace sets the name registry loggers are created in and
// removed from. Without it every Manager gets its own NewNamespace();
// Managers given the same namespace hand out the same *Logger per name.
func WithNamespace(ns *Namespace) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// NewManager creates a Manager. The stream is installed first, then the
// level and the formatter are applied to it.
func NewManager(opts ...Option) (*Manager, error) {
	o := options{level: core.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.namespace == nil {
		o.namespace = NewNamespace()
	}

	m := &Manager{
		loggers:   make(map[string]*Logger),
		namespace: o.namespace,
	}
	if err := m.SetStream(o.stream); err != nil {
		return nil, err
	}
	if err := m.SetLevel(o.level); err != nil {
		streams.release(m.stream)
		return nil, err
	}
	if err := m.SetFormatter(o.formatter); err != nil {
		streams.release(m.stream)
		return nil, err
	}
	return m, nil
}

// Level returns the current level
func (m *Manager) Level() core.Level {
	return m.level
}

// SetLevel validates level and applies it to the stream, to every
// registered logger and to every handler attached to them.
func (m *Manager) SetLevel(level core.Level) error {
	if err := core.ValidateLevel(level); err != nil {
		return err
	}

	m.level = level
	m.stream.SetLevel(level)
	for _, l := range m.loggers {
		l.SetLevel(level)
		for _, h := range l.Handlers() {
			if m.foreign(h) {
				continue
			}
			h.SetLevel(level)
		}
	}
	return nil
}

// Formatter returns the current formatter
func (m *Manager) Formatter() formatter.Formatter {
	return m.formatter
}

// SetFormatter applies f to the stream and to every handler of every
// registered logger. A nil f restores formatter.Default(); a typed nil
// pointer fails with core.ErrInvalidFormatter.
func (m *Manager) SetFormatter(f formatter.Formatter) error {
	if f == nil {
		f = formatter.Default()
	} else if handler.IsNil(f) {
		return fmt.Errorf("%w: %T", core.ErrInvalidFormatter, f)
	}

	m.formatter = f
	m.stream.SetFormatter(f)
	for _, l := range m.loggers {
		for _, h := range l.Handlers() {
			if m.foreign(h) {
				continue
			}
			h.SetFormatter(f)
		}
	}
	return nil
}

// Stream returns the current output handler
func (m *Manager) Stream() handler.Handler {
	return m.stream
}

// SetStream replaces the output handler. A nil h installs a new console
// handler on os.Stderr; a typed nil pointer fails with
// core.ErrInvalidHandler. The previous handler is detached from every
// registered logger but left open, since other owners may still write
// to the same stream.
func (m *Manager) SetStream(h handler.Handler) error {
	if h == nil {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	} else if handler.IsNil(h) {
		return fmt.Errorf("%w: %T", core.ErrInvalidHandler, h)
	}

	previous := m.stream
	m.stream = h
	streams.acquire(h)
	if previous == nil {
		return nil
	}
	streams.release(previous)

	h.SetLevel(m.level)
	h.SetFormatter(m.formatter)
	for _, l := range m.loggers {
		l.RemoveHandler(previous)
		l.AddHandler(h)
	}
	return nil
}

// GetLogger returns the logger registered under name, creating it with
// the Manager's level and stream on first use. Repeated calls return the
// same *Logger.
func (m *Manager) GetLogger(name string) *Logger {
	if l, ok := m.loggers[name]; ok {
		return l
	}

	l := m.namespace.Get(name)
	l.SetLevel(m.level)
	l.AddHandler(m.stream)
	m.loggers[name] = l
	return l
}

// Lookup returns the registered logger or an error wrapping
// core.ErrLoggerNotFound.
func (m *Manager) Lookup(name string) (*Logger, error) {
	l, ok := m.loggers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrLoggerNotFound, name)
	}
	return l, nil
}

// Has reports whether name is registered
func (m *Manager) Has(name string) bool {
	_, ok := m.loggers[name]
	return ok
}

// Len returns the number of registered loggers
func (m *Manager) Len() int {
	return len(m.loggers)
}

// Names returns the registered names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.loggers))
	for name := range m.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove unregisters the logger called name. Every handler is detached;
// those that are neither protected nor the Manager's own stream are
// closed. Another Manager's stream, reachable through a shared
// namespace, stays attached and open. The name is also deleted from the namespace. Close failures
// are combined into the returned error after removal completes.
func (m *Manager) Remove(name string) error {
	l, ok := m.loggers[name]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrLoggerNotFound, name)
	}

	var err error
	for _, h := range l.Handlers() {
		if m.foreign(h) {
			continue
		}
		l.RemoveHandler(h)
		if h == m.stream || handler.IsProtected(h) {
			continue
		}
		err = multierr.Append(err, h.Close())
	}

	delete(m.loggers, name)
	m.namespace.Delete(name)
	return err
}

// RemoveLogger removes l by its name
func (m *Manager) RemoveLogger(l *Logger) error {
	if l == nil {
		return fmt.Errorf("%w: nil logger", core.ErrLoggerNotFound)
	}
	return m.Remove(l.Name())
}

// Close removes every registered logger and closes the stream unless it
// is protected or still the stream of another Manager.
func (m *Manager) Close() error {
	var err error
	for _, name := range m.Names() {
		err = multierr.Append(err, m.Remove(name))
	}
	if streams.release(m.stream) && !handler.IsProtected(m.stream) {
		err = multierr.Append(err, m.stream.Close())
	}
	return err
}

// foreign reports whether h is the stream of some other Manager
func (m *Manager) foreign(h handler.Handler) bool {
	n := streams.owners(h)
	if h == m.stream {
		n--
	}
	return n > 0
}

// streamSet counts the Managers currently using each handler as their
// stream.
type streamSet struct {
	mu    sync.Mutex
	count map[handler.Handler]int
}

var streams = &streamSet{count: make(map[handler.Handler]int)}

func (s *streamSet) acquire(h handler.Handler) {
	s.mu.Lock()
	s.count[h]++
	s.mu.Unlock()
}

// release drops one use of h and reports whether no Manager uses it
// any more.
func (s *streamSet) release(h handler.Handler) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count[h] <= 1 {
		delete(s.count, h)
		return true
	}
	s.count[h]--
	return false
}

func (s *streamSet) owners(h handler.Handler) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count[h]
}
