package handler

import (
	"io"
	"os"
	"sync"
)

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// StripColor removes ANSI color sequences before writing (default: false)
	StripColor bool
}

// WriterSink writes each line to an io.Writer such as a serial port or a
// terminal. Write errors are counted, not returned: the logging call has
// nobody to report them to.
type WriterSink struct {
	writer     io.Writer
	stripColor bool
	mu         sync.Mutex
	scratch    []byte
	stats      *Stats
}

// NewWriterSink creates a new writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	s := &WriterSink{
		writer:     cfg.Writer,
		stripColor: cfg.StripColor,
		stats:      NewStats(),
	}
	if s.stripColor {
		s.scratch = make([]byte, 0, 256)
	}
	return s
}

// Print writes p to the underlying writer
func (s *WriterSink) Print(p []byte) {
	s.mu.Lock()
	data := p
	if s.stripColor {
		s.scratch = StripColor(s.scratch[:0], p)
		data = s.scratch
	}
	_, err := s.writer.Write(data)
	s.mu.Unlock()

	if err != nil {
		s.stats.IncrementFailed()
		return
	}
	s.stats.IncrementProcessed()
}

// Stats returns a snapshot of the current statistics
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
