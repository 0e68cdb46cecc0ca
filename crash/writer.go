package crash

import (
	"fmt"
	"io"
	"os"
)

// WriterReporter prints reports as plain text
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter creates a reporter writing to w (default: os.Stderr)
func NewWriterReporter(w io.Writer) *WriterReporter {
	if w == nil {
		w = os.Stderr
	}
	return &WriterReporter{w: w}
}

// Report writes the panic value, if any, followed by one file:line per
// breadcrumb, oldest first. Write errors are dropped.
func (wr *WriterReporter) Report(r Report) {
	if r.Value != nil {
		fmt.Fprintf(wr.w, "panic: %v\n", r.Value)
	}
	fmt.Fprintf(wr.w, "fault log (%d records):\n", len(r.Records))
	for _, rec := range r.Records {
		fmt.Fprintf(wr.w, "  %s\n", rec)
	}
}
