package core

import "errors"

var (
	// ErrInvalidLevel is returned when a level outside the enumerated set is used.
	ErrInvalidLevel = errors.New("invalid logging level")
	// ErrInvalidFormatter is returned when a value cannot act as a formatter.
	ErrInvalidFormatter = errors.New("incorrect formatter type")
	// ErrInvalidHandler is returned when a value cannot act as a handler.
	ErrInvalidHandler = errors.New("unsupported stream handler")
	// ErrLoggerNotFound is returned when a name is not registered.
	ErrLoggerNotFound = errors.New("logger not found")
	// ErrHandlerClosed is returned by handlers that receive entries after Close.
	ErrHandlerClosed = errors.New("handler closed")
)
