// Package config builds a logger.Manager from environment variables:
//
//	EPILOG_LEVEL             NOTSET, DEBUG, INFO (default), WARN, ERROR, CRITICAL or a number
//	EPILOG_FORMAT            text (default), json, zap-json or zap-console
//	EPILOG_TEMPLATE          TextFormatter template, e.g. "{time} {level} {message}"
//	EPILOG_TIMESTAMP_FORMAT  Go time layout for text and json output
//	EPILOG_OUTPUT            stderr (default), stdout or a file path
//	EPILOG_COLOR             colorize the level in text output
//
// Errors wrap ErrParsingConfig, and core.ErrInvalidLevel for a bad level.
package config
