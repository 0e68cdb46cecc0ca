// Package logger is the public API of emlog. Most users only need to
// import this package.
//
// A Logger owns one fixed-size buffer and works in one of three modes,
// normally chosen at compile time with build tags:
//
//	go build                      # disabled: every call is a no-op
//	go build -tags emlog_runtime  # leveled, colored lines to a sink
//	go build -tags emlog_faultlog # file:line breadcrumbs for crash dumps
//
// CompiledMode reports the selection. Builder.WithMode overrides it,
// which hosts and tests use to run several modes in one binary.
//
// In runtime mode each call formats
//
//	<app>[<ms>] : <LEVEL> : <file> : <function> : <line> -> <message>
//
// into the buffer and hands it to the registered sink. The level check
// comes first, so filtered calls cost one comparison and no caller
// lookup.
//
//	log := logger.NewBuilder().
//	    WithMode(logger.ModeRuntime).
//	    WithAppName("pump").
//	    WithLevel(logger.InfoLevel).
//	    Build()
//	log.Register(core.NewElapsedClock(nil), handler.NewWriterSink(handler.WriterConfig{}))
//	log.Infof("primed in %d ms", 40)
//
// In fault-log mode the same calls only record the caller's file and line
// in the faultlog.Accumulator returned by Accumulator, evicting the oldest
// breadcrumbs when full. Snapshot copies the raw buffer out for a crash
// handler.
//
// A Logger is not safe for concurrent use.
//
// The package also keeps a default Logger, built in the compiled mode with
// a stdout sink. The package-level functions Infof, Fault, etc. delegate
// to it; SetDefault replaces it.
package logger
