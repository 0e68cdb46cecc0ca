// Package zaphandler forwards finished log lines to a zap logger, so a
// host process can collect device-style output in its own log pipeline.
package zaphandler

import (
	"bytes"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/emlog/handler"
)

// Sink writes each line as one zap entry at a fixed level. Color
// sequences and the line terminator are removed first.
type Sink struct {
	log     *zap.Logger
	level   zapcore.Level
	mu      sync.Mutex
	scratch []byte
	stats   *handler.Stats
}

// New creates a sink writing to log at level. A nil log discards lines.
func New(log *zap.Logger, level zapcore.Level) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{
		log:     log,
		level:   level,
		scratch: make([]byte, 0, 256),
		stats:   handler.NewStats(),
	}
}

// Print forwards p to the zap logger
func (s *Sink) Print(p []byte) {
	if !s.log.Core().Enabled(s.level) {
		return
	}

	s.mu.Lock()
	s.scratch = handler.StripColor(s.scratch[:0], p)
	msg := string(bytes.TrimRight(s.scratch, "\r\n"))
	s.mu.Unlock()

	if ce := s.log.Check(s.level, msg); ce != nil {
		ce.Write()
		s.stats.IncrementProcessed()
		return
	}
	s.stats.IncrementFailed()
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// Close flushes the zap logger
func (s *Sink) Close() error {
	return s.log.Sync()
}
