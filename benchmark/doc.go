// Package benchmark times a scope of code and reports the duration
// through a logger, in the largest unit that keeps the value readable.
//
// A Benchmark decides once, at creation, whether its level passes the
// logger; a disabled benchmark reads no clock and emits no timing
// record. Failures are always reported: a panic or a returned error
// produces an ERROR record with the message "Traceback:" and a stack,
// whatever the benchmark level.
//
//	func load(log *logger.Logger) (err error) {
//	    defer benchmark.New(log, "load").Enter().Exit(&err)
//	    ...
//	}
//
// or, with a closure:
//
//	err := benchmark.New(log, "load", benchmark.WithLevel(logger.DebugLevel)).
//	    Do(func() error { return load() })
//
// The record reads "load: (12.3456 ms)". ConvertUnits and BreakdownUnits
// expose the unit table directly.
package benchmark
