package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level represents the severity level of a log entry.
// Values are spaced by ten so that the ordering matches the
// conventional numeric severities.
type Level int

const (
	// NotSetLevel accepts every entry
	NotSetLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 20
	// WarnLevel for warning messages
	WarnLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for failures the program cannot recover from
	CriticalLevel Level = 50
)

// Levels returns every valid level, lowest first.
func Levels() []Level {
	return []Level{NotSetLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel}
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NotSetLevel:
		return "NOTSET"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the enumerated levels.
func (l Level) Valid() bool {
	switch l {
	case NotSetLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel:
		return true
	default:
		return false
	}
}

// ValidateLevel returns an error wrapping ErrInvalidLevel when l is not
// one of the enumerated levels.
func ValidateLevel(l Level) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return nil
}

// ParseLevel converts a level name or its numeric value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NOTSET":
		return NotSetLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return NotSetLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	if err := ValidateLevel(Level(n)); err != nil {
		return NotSetLevel, err
	}
	return Level(n), nil
}
