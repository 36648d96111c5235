package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/epilog/core"
)

const (
	// DefaultTemplate renders timestamp, logger name, level, originating
	// module/function/line and the message.
	DefaultTemplate = "{time} | {name} | {level} | {module}.{func}:{line} | {message}"
	// DefaultTimestampFormat is used when Config.TimestampFormat is empty.
	DefaultTimestampFormat = "2006-01-02 15:04:05.000"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// Template is the TextFormatter layout (empty for DefaultTemplate)
	Template string
	// TimestampFormat specifies the time format (empty for DefaultTimestampFormat)
	TimestampFormat string
	// IncludeCaller adds caller information to JSON output
	IncludeCaller bool
	// Colorize wraps the level in ANSI colors (TextFormatter only)
	Colorize bool
}

// Default returns a new TextFormatter using DefaultTemplate.
func Default() *TextFormatter {
	return NewTextFormatter(Config{})
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// copyBytes detaches the buffer content from the pool.
func copyBytes(buf *bytes.Buffer) []byte {
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
