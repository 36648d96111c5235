// Package consolehandler provides the stream handler that writes
// formatted log entries to any io.Writer (default: os.Stderr).
//
// Handlers wrapping os.Stdin, os.Stdout or os.Stderr report themselves
// as protected, so a Manager never closes them when a logger is
// removed. Close never closes the writer; it only flushes buffered
// writers and makes the handler reject further entries.
//
// When no formatter is configured and the writer is a terminal, levels
// are colorized.
package consolehandler
