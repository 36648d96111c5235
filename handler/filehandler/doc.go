// Package filehandler provides a handler that writes formatted log
// entries to a file.
//
// The file is opened in append mode by default (Truncate switches to
// truncation) and its parent directories are created on demand. With
// Delay set, nothing touches the filesystem until the first entry
// passes the handler level. Rotation and retention are deliberately
// left to external tools.
package filehandler
