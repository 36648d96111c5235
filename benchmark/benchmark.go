package benchmark

import (
	"fmt"
	"time"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/logger"
)

// Target is the logger a Benchmark reports to. *logger.Logger satisfies it.
type Target interface {
	Enabled(level core.Level) bool
	Log(level core.Level, msg string, fields ...core.Field)
	Exception(msg string, err error, fields ...core.Field)
}

// TracebackMessage is the message of the record written when the timed
// scope fails.
const TracebackMessage = "Traceback:"

// Benchmark times a scope and logs its duration on a Target. Whether it
// is enabled is decided once, when it is created.
type Benchmark struct {
	log         Target
	description string
	level       core.Level
	enabled     bool
	converter   *Converter
	now         func() time.Time
	t0          time.Time
	callerSkip  int
}

// Option configures a Benchmark
type Option func(*Benchmark)

// WithLevel sets the level of the timing record (default: INFO)
func WithLevel(level core.Level) Option {
	return func(b *Benchmark) {
		b.level = level
	}
}

// WithConverter replaces the default unit table
func WithConverter(c *Converter) Option {
	return func(b *Benchmark) {
		if c != nil {
			b.converter = c
		}
	}
}

// WithClock replaces time.Now as the source of start and end times
func WithClock(now func() time.Time) Option {
	return func(b *Benchmark) {
		if now != nil {
			b.now = now
		}
	}
}

// WithCallerSkip moves the caller of the records n frames above Exit
// when the target is a *logger.Logger. With 1 they name the function that
// deferred Exit; a scope run through Do needs 2.
func WithCallerSkip(n int) Option {
	return func(b *Benchmark) {
		b.callerSkip = n
	}
}

// New creates a Benchmark reporting to log under description.
func New(log Target, description string, opts ...Option) *Benchmark {
	b := &Benchmark{
		log:         log,
		description: description,
		level:       core.InfoLevel,
		converter:   defaultConverter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if l, ok := log.(*logger.Logger); ok && b.callerSkip != 0 {
		b.log = l.AddCallerSkip(b.callerSkip)
	}
	b.enabled = log.Enabled(b.level)
	return b
}

// Enabled reports whether the timing record will be emitted
func (b *Benchmark) Enabled() bool {
	return b.enabled
}

// Level returns the level of the timing record
func (b *Benchmark) Level() core.Level {
	return b.level
}

// Description returns the text that prefixes the timing record
func (b *Benchmark) Description() string {
	return b.description
}

// Enter starts the clock when the benchmark is enabled. It returns b so
// that a scope reads
//
//	bm := benchmark.New(log, "load config").Enter()
//	defer bm.Exit(&err)
func (b *Benchmark) Enter() *Benchmark {
	if b.enabled {
		b.t0 = b.now()
	}
	return b
}

// Exit ends the scope and must be deferred directly, since it recovers
// panics. A panic is logged as an error record with its stack and then
// re-raised with the same value. A non-nil *errp is logged the same way
// and left untouched. Otherwise, if enabled, one record at the benchmark
// level reports the elapsed time as "<description>: (<value> <unit>)".
func (b *Benchmark) Exit(errp *error) {
	if r := recover(); r != nil {
		b.log.Exception(TracebackMessage, panicError(r))
		panic(r)
	}
	if errp != nil && *errp != nil {
		b.log.Exception(TracebackMessage, *errp)
		return
	}
	if !b.enabled {
		return
	}

	elapsed, unit := b.converter.Convert(b.now().Sub(b.t0).Nanoseconds())
	b.log.Log(b.level, fmt.Sprintf("%s: (%.4f %s)", b.description, elapsed, unit))
}

// Do runs fn inside Enter and Exit and returns its error unchanged.
// Panics in fn are logged and propagate.
func (b *Benchmark) Do(fn func() error) (err error) {
	b.Enter()
	defer b.Exit(&err)
	return fn()
}

// panicError turns a recovered value into an error for the record
func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
