package crash

import (
	"bytes"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/faultlog"
)

// Report is the state captured at a fault
type Report struct {
	// Value is the recovered panic value, nil for a manual capture
	Value any
	// Records are the breadcrumbs, oldest first
	Records []faultlog.Record
	// Raw is a copy of the buffer with trailing zero padding removed
	Raw []byte
}

// Reporter delivers a Report
type Reporter interface {
	Report(r Report)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(r Report)

// Report calls f(r)
func (f ReporterFunc) Report(r Report) {
	f(r)
}

// Capture builds a report from the accumulator's current contents. A nil
// acc yields a report with no records.
func Capture(acc *faultlog.Accumulator, value any) Report {
	r := Report{Value: value}
	if acc == nil {
		return r
	}
	raw := make([]byte, acc.Capacity())
	acc.Snapshot(raw)
	r.Raw = bytes.TrimRight(raw, "\x00")
	r.Records = acc.Records()
	return r
}

// guardFunc is skipped when locating the panicking frame
const guardFunc = "github.com/philipp01105/emlog/crash.Guard"

// Guard must be deferred directly. When the deferring function panics it
// records the panicking frame in acc, reports, and re-panics with the
// same value. Without a panic it does nothing.
func Guard(acc *faultlog.Accumulator, rep Reporter) {
	v := recover()
	if v == nil {
		return
	}
	if acc != nil {
		if c := core.CallerOutside(guardFunc); c.Defined {
			acc.Append(c.File, c.Line)
		}
	}
	if rep != nil {
		rep.Report(Capture(acc, v))
	}
	panic(v)
}
