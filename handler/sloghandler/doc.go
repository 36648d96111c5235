// Package sloghandler provides a log/slog.Handler that routes slog
// records into a named logger, so code written against the standard
// library's structured logging follows the level, stream and formatter
// set on a logger.Manager:
//
//	log := m.GetLogger("http")
//	slog.SetDefault(slog.New(sloghandler.New(log)))
//
// slog levels map onto the nearest lower core level; LevelCritical
// (slog.LevelError+4) and above map to CRITICAL.
package sloghandler
