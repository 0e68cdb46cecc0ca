package handler

// Sink receives finished log lines. Print is called synchronously from the
// logging call and must not retain p: the logger rewrites the buffer on the
// next call.
type Sink interface {
	Print(p []byte)
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(p []byte)

// Print calls f(p)
func (f SinkFunc) Print(p []byte) {
	f(p)
}

// NopSink discards every line. It is the sink used before registration.
type NopSink struct{}

// Print does nothing
func (NopSink) Print([]byte) {}

// StatsSource is implemented by sinks that count their writes
type StatsSource interface {
	Stats() Snapshot
}
