// Package formatter defines how log entries are rendered into bytes.
//
// Formatter is the capability a handler needs: turn an Entry into a
// line of output. WriterFormatter is an optional extension that writes
// straight to an io.Writer; handlers prefer it when available.
//
// Three formatters are built in:
//
//   - TextFormatter renders a template. DefaultTemplate shows the
//     timestamp, logger name, level, originating module, function and
//     line, then the message. Placeholders are {time}, {name}, {level},
//     {module}, {func}, {file}, {line} and {message}; anything else in
//     braces is copied verbatim. Fields follow as key=value pairs and a
//     stack trace, when the entry carries one, follows on its own lines.
//   - JSONFormatter writes one JSON object per entry.
//   - ZapFormatter delegates to a zapcore.Encoder (JSON or console).
//
// A single formatter instance is shared by every handler of a Manager,
// so implementations must be safe for concurrent use.
package formatter
