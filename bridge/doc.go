// Package bridge groups adapters that let a host application's existing
// logger leave fault breadcrumbs in a faultlog.Accumulator.
//
// Each adapter records only the origin (file and line) of log events it
// sees. The host keeps logging through its own pipeline; the accumulator
// holds the trail of recent call sites for a crash report.
//
//   - zapbridge: a zapcore.Core to tee next to the normal core
//   - logrusbridge: a logrus.Hook
//   - zerologbridge: a zerolog.Hook
//
// The accumulator is not safe for concurrent use. Adapters write through a
// Recorder, which serializes appends; adapters built on the same Recorder
// share its lock.
package bridge
