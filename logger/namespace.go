package logger

import (
	"sort"
	"sync"

	"github.com/philipp01105/epilog/core"
)

// Namespace is a name registry for loggers: asking for the same name
// twice returns the same Logger. One process-wide Namespace backs the
// package default Manager; tests can create isolated ones.
type Namespace struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

var globalNamespace = NewNamespace()

// NewNamespace creates an empty namespace
func NewNamespace() *Namespace {
	return &Namespace{loggers: make(map[string]*Logger)}
}

// GlobalNamespace returns the process-wide namespace
func GlobalNamespace() *Namespace {
	return globalNamespace
}

// Get returns the logger registered under name, creating it with level
// NOTSET, caller capture and no handlers if needed.
func (n *Namespace) Get(name string) *Logger {
	n.mu.Lock()
	defer n.mu.Unlock()

	if l, ok := n.loggers[name]; ok {
		return l
	}
	l := NewBuilder().
		WithName(name).
		WithLevel(core.NotSetLevel).
		WithCaller(true).
		Build()
	n.loggers[name] = l
	return l
}

// Lookup returns the logger registered under name without creating it
func (n *Namespace) Lookup(name string) (*Logger, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	l, ok := n.loggers[name]
	return l, ok
}

// Delete forgets name and reports whether it was registered
func (n *Namespace) Delete(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.loggers[name]
	delete(n.loggers, name)
	return ok
}

// Len returns the number of registered loggers
func (n *Namespace) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.loggers)
}

// Names returns the registered names in sorted order
func (n *Namespace) Names() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	names := make([]string, 0, len(n.loggers))
	for name := range n.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
