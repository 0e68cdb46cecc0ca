// Package sloghandler provides a log/slog.Handler backed by a
// logger.Logger, so code written against the standard library's slog
// feeds the same fixed buffer.
//
// In runtime mode each record becomes one formatted line whose origin is
// taken from the record's program counter. Attributes are appended to the
// message as key=value pairs. In fault-log mode only the origin is kept.
package sloghandler
