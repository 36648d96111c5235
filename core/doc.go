// Package core defines the shared types used across epilog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, the Field type for structured key-value
// pairs, and the sentinel errors returned by the other packages.
//
// Only six levels exist: NOTSET, DEBUG, INFO, WARN, ERROR and CRITICAL,
// numbered 0 to 50 in steps of ten. Any other value fails ValidateLevel
// with ErrInvalidLevel; nothing in epilog clamps or defaults an invalid
// level silently.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed
// it. The pool pre-allocates the Fields slice with capacity 8.
package core
