package handler

import (
	"bytes"
	"errors"
	"testing"
)

func TestStripColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello\n\r", "hello\n\r"},
		{"sgr", "\x1b[32;1mapp[1.0] : INFO -> hi\n\r\x1b[0m", "app[1.0] : INFO -> hi\n\r"},
		{"reset only", "\x1b[0m", ""},
		{"lone escape", "a\x1bb", "ab"},
		{"unterminated", "ok\x1b[31", "ok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripColor(nil, []byte(tt.in)))
			if got != tt.want {
				t.Errorf("StripColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(WriterConfig{Writer: &buf})

	s.Print([]byte("\x1b[33;1mline one\n\r"))
	s.Print([]byte("line two\n\r"))

	if got, want := buf.String(), "\x1b[33;1mline one\n\rline two\n\r"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got := s.Stats(); got.ProcessedTotal != 2 || got.FailedTotal != 0 {
		t.Errorf("stats = %+v, want 2 processed", got)
	}
}

func TestWriterSink_StripColor(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(WriterConfig{Writer: &buf, StripColor: true})

	s.Print([]byte("\x1b[31;1mboom\n\r\x1b[0m"))

	if got := buf.String(); got != "boom\n\r" {
		t.Errorf("output = %q, want %q", got, "boom\n\r")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("uart busy") }

func TestWriterSink_CountsFailures(t *testing.T) {
	s := NewWriterSink(WriterConfig{Writer: failingWriter{}})

	s.Print([]byte("x"))
	s.Print([]byte("y"))

	if got := s.Stats(); got.ProcessedTotal != 0 || got.FailedTotal != 2 {
		t.Errorf("stats = %+v, want 2 failed", got)
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed()
	s.IncrementFailed()
	s.Reset()

	if snap := s.GetSnapshot(); snap != (Snapshot{}) {
		t.Errorf("snapshot after reset = %+v", snap)
	}
}

type closingSink struct {
	lines  []string
	closed bool
	err    error
}

func (c *closingSink) Print(p []byte) { c.lines = append(c.lines, string(p)) }

func (c *closingSink) Close() error {
	c.closed = true
	return c.err
}

func TestMultiSink(t *testing.T) {
	a := &closingSink{}
	b := &closingSink{}
	var calls int
	m := NewMultiSink(a, nil, SinkFunc(func([]byte) { calls++ }), b)

	m.Print([]byte("hello"))

	if len(a.lines) != 1 || len(b.lines) != 1 || calls != 1 {
		t.Fatalf("fan-out: a=%v b=%v func=%d", a.lines, b.lines, calls)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if !a.closed || !b.closed {
		t.Error("Close() did not close every closer")
	}
}

func TestMultiSink_CloseCombinesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	m := NewMultiSink(&closingSink{err: errA}, &closingSink{err: errB})

	err := m.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Close() = %v, want both errors", err)
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = NopSink{}
	s.Print([]byte("ignored"))
}
