package handler

import (
	"io"

	"go.uber.org/multierr"
)

// MultiSink sends each line to multiple sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink. Nil sinks are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Print forwards p to every sink in order
func (m *MultiSink) Print(p []byte) {
	for _, s := range m.sinks {
		s.Print(p)
	}
}

// Close closes every sink that implements io.Closer and returns the
// combined error.
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
