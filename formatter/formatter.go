package formatter

import (
	"fmt"

	"github.com/philipp01105/emlog/core"
)

// ColorReset restores the terminal color after a line
const ColorReset = "\x1b[0m"

// LineEnd terminates every formatted line
const LineEnd = "\n\r"

// Config holds formatter configuration
type Config struct {
	// NoColor drops the level color and the color reset from the output
	NoColor bool
}

// Header carries the origin and context of one log line.
type Header struct {
	Level        core.Level
	AppName      string
	Milliseconds float32
	File         string
	Function     string
	Line         int
}

// Formatter renders log lines into a fixed core.Buffer. The buffer is
// rewritten on every call, so the returned slice is only valid until the
// next Format.
//
// Formatter is not safe for concurrent use.
type Formatter struct {
	buf     *core.Buffer
	noColor bool
	trailer string
}

// New creates a formatter writing into buf
func New(buf *core.Buffer, cfg Config) *Formatter {
	if buf == nil {
		buf = core.NewBuffer(0)
	}
	trailer := LineEnd + ColorReset
	if cfg.NoColor {
		trailer = LineEnd
	}
	return &Formatter{buf: buf, noColor: cfg.NoColor, trailer: trailer}
}

// Trailer returns the fixed suffix appended to every line
func (f *Formatter) Trailer() string {
	return f.trailer
}

// Format clears the buffer and writes the header, the message produced by
// format and args, and the trailer. The trailer's space is reserved before
// anything else is written: header and message are truncated silently to
// make room for it, so it is always complete unless the buffer is smaller
// than the trailer itself.
func (f *Formatter) Format(h Header, format string, args ...any) []byte {
	data := f.buf.Bytes()
	clear(data)

	trailer := f.trailer
	if len(trailer) > len(data) {
		trailer = trailer[:len(data)]
	}

	w := boundedWriter{buf: data[:len(data)-len(trailer)]}
	f.writeHeader(&w, h)
	fmt.Fprintf(&w, format, args...)

	n := w.n + copy(data[w.n:], trailer)
	return data[:n]
}
