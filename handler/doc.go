// Package handler provides the Sink interface and its built-in
// implementations for delivering finished log lines.
//
// A sink is called synchronously, inline with the logging call, and
// receives a slice of the logger's fixed buffer. It must copy what it
// needs before returning. Sinks are expected not to block.
//
// Built-in sinks:
//
//   - WriterSink writes lines to any io.Writer (default: stdout), with
//     optional ANSI color stripping for plain links.
//   - MultiSink fans a line out to several sinks.
//   - filehandler.FileSink writes to a size-rotated file.
//   - zaphandler.Sink forwards lines to a zap logger.
//
// WriterSink counts processed and failed writes via the Stats type,
// which can be queried at runtime for monitoring.
package handler
