package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/philipp01105/epilog/core"
)

type token uint8

const (
	tokLiteral token = iota
	tokTime
	tokName
	tokLevel
	tokModule
	tokFunc
	tokFile
	tokLine
	tokMessage
)

var placeholders = map[string]token{
	"time":    tokTime,
	"name":    tokName,
	"level":   tokLevel,
	"module":  tokModule,
	"func":    tokFunc,
	"file":    tokFile,
	"line":    tokLine,
	"message": tokMessage,
}

type segment struct {
	tok     token
	literal string
}

// parseTemplate splits a template into literal text and placeholders.
// Unknown placeholders are kept verbatim.
func parseTemplate(tmpl string) []segment {
	var segs []segment
	var lit strings.Builder
	for len(tmpl) > 0 {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			lit.WriteString(tmpl)
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			lit.WriteString(tmpl)
			break
		}
		end += open
		lit.WriteString(tmpl[:open])
		tok, ok := placeholders[tmpl[open+1:end]]
		if !ok {
			lit.WriteString(tmpl[open : end+1])
		} else {
			if lit.Len() > 0 {
				segs = append(segs, segment{tok: tokLiteral, literal: lit.String()})
				lit.Reset()
			}
			segs = append(segs, segment{tok: tok})
		}
		tmpl = tmpl[end+1:]
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{tok: tokLiteral, literal: lit.String()})
	}
	return segs
}

var levelColors = map[core.Level][]color.Attribute{
	core.DebugLevel:    {color.FgCyan},
	core.InfoLevel:     {color.FgGreen},
	core.WarnLevel:     {color.FgYellow},
	core.ErrorLevel:    {color.FgRed},
	core.CriticalLevel: {color.FgHiRed, color.Bold},
}

// TextFormatter formats log entries as human-readable text following a
// template such as DefaultTemplate. Fields follow the rendered template
// as key=value pairs; a stack trace, when present, follows on its own lines.
type TextFormatter struct {
	Config
	segments []segment
	levels   map[core.Level]string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}

	f := &TextFormatter{
		Config:   cfg,
		segments: parseTemplate(cfg.Template),
		levels:   make(map[core.Level]string, len(core.Levels())),
	}
	for _, l := range core.Levels() {
		name := l.String()
		if attrs, ok := levelColors[l]; ok && cfg.Colorize {
			c := color.New(attrs...)
			c.EnableColor()
			name = c.Sprint(name)
		}
		f.levels[l] = name
	}
	return f
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	return copyBytes(buf), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	for _, seg := range f.segments {
		switch seg.tok {
		case tokLiteral:
			buf.WriteString(seg.literal)
		case tokTime:
			buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		case tokName:
			buf.WriteString(entry.Name)
		case tokLevel:
			if name, ok := f.levels[entry.Level]; ok {
				buf.WriteString(name)
			} else {
				buf.WriteString(entry.Level.String())
			}
		case tokModule:
			buf.WriteString(entry.Caller.Module())
		case tokFunc:
			buf.WriteString(entry.Caller.ShortFunction())
		case tokFile:
			buf.WriteString(entry.Caller.ShortFile)
		case tokLine:
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		case tokMessage:
			buf.WriteString(entry.Message)
		}
	}

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	if entry.Stack != "" {
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimRight(entry.Stack, "\n"))
	}

	buf.WriteByte('\n')
}
