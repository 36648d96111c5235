package logger

import (
	"sync"

	"github.com/philipp01105/epilog/core"
)

var (
	defaultManager *Manager
	defaultMu      sync.RWMutex
)

func init() {
	// INFO, stderr console handler, default template
	m, err := NewManager(WithNamespace(GlobalNamespace()))
	if err != nil {
		panic(err)
	}
	defaultManager = m
}

// Default returns the default Manager
func Default() *Manager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefault replaces the default Manager. The previous one is returned
// and left untouched.
func SetDefault(m *Manager) *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	previous := defaultManager
	defaultManager = m
	return previous
}

// GetLogger returns a named logger from the default Manager
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// SetLevel sets the level of the default Manager
func SetLevel(level core.Level) error {
	return Default().SetLevel(level)
}
