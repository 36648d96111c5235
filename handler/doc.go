// Package handler defines the Handler capability every sink provides:
// emit an entry, carry its own level threshold and formatter, and release
// its resources on Close. A logger.Manager only ever talks to handlers
// through this interface, which is how it can cascade a new level or
// formatter to every output of every logger it owns.
//
// Handlers wrapping a process-wide stream such as os.Stderr implement
// Protector and report true; they are detached but never closed when a
// logger is removed.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stderr).
//   - filehandler appends to a file, optionally opening it on first use.
//   - multihandler fans out a single entry to multiple child handlers.
//   - sloghandler adapts a logger to log/slog.Handler.
//   - bridgehandler forwards entries into zap, hclog, zerolog or logrus.
//
// Base carries the level, formatter and Stats shared by the built-in
// handlers. Stats counts processed, filtered and failed entries and can
// be queried at runtime.
package handler
