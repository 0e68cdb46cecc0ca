package faultlog

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/emlog/core"
)

// DefaultSeparator terminates every record.
const DefaultSeparator byte = '-'

// Option configures an Accumulator
type Option func(*Accumulator)

// WithSeparator sets the record terminator. NUL and decimal digits cannot
// delimit records and are ignored.
func WithSeparator(sep byte) Option {
	return func(a *Accumulator) {
		if sep != 0 && (sep < '0' || sep > '9') {
			a.sep = sep
		}
	}
}

// Stats counts what happened to appended records. The counters are plain
// integers; the accumulator is single-threaded.
type Stats struct {
	Appended uint64 // records written
	Evicted  uint64 // oldest records dropped to make room
	Rejected uint64 // records longer than the whole buffer
	Resets   uint64 // buffers wiped after a corrupted layout was found
}

// Accumulator packs fault breadcrumbs of the form <file><line><sep> into a
// fixed buffer, oldest first, followed by zero padding. When a new record
// does not fit, the oldest records are evicted.
//
// Append never allocates and never touches memory outside the buffer. The
// accumulator is not safe for concurrent use.
type Accumulator struct {
	buf   *core.Buffer
	sep   byte
	stats Stats
}

// New returns an accumulator writing into buf. A nil buf allocates one of
// core.DefaultCapacity.
func New(buf *core.Buffer, opts ...Option) *Accumulator {
	if buf == nil {
		buf = core.NewBuffer(0)
	}
	a := &Accumulator{buf: buf, sep: DefaultSeparator}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append stores the record basename(file) + line + separator after the
// newest record, evicting the oldest records as needed.
//
// A record longer than the buffer capacity is dropped and the stored
// records are left untouched. If the buffer no longer has the
// records-then-padding layout it is zeroed and the record is dropped.
func (a *Accumulator) Append(file string, line int) {
	data := a.buf.Bytes()
	name := core.Basename(file)
	size := len(name) + digits(line) + 1
	if size > len(data) {
		a.stats.Rejected++
		return
	}

	occupied, clean := a.scan(data)
	switch {
	case occupied == 0:
		// Stale bytes may be left over when the buffer was not zeroed
		// before a fault handler started using it.
		clear(data)
	case !clean:
		clear(data)
		a.stats.Resets++
		return
	default:
		for occupied+size > len(data) {
			occupied = a.evictOldest(data, occupied)
		}
	}

	a.write(data[occupied:occupied+size], name, line)
	a.stats.Appended++
}

// scan returns the occupied length, i.e. the offset just past the last
// separator, and whether the buffer holds nothing but complete records
// followed by zero padding.
func (a *Accumulator) scan(data []byte) (occupied int, clean bool) {
	occupied = bytes.LastIndexByte(data, a.sep) + 1
	if bytes.IndexByte(data[:occupied], 0) >= 0 {
		return occupied, false
	}
	for _, c := range data[occupied:] {
		if c != 0 {
			return occupied, false
		}
	}
	return occupied, true
}

// evictOldest shifts everything after the first record to the front,
// zero-fills the vacated tail and returns the new occupied length.
func (a *Accumulator) evictOldest(data []byte, occupied int) int {
	first := bytes.IndexByte(data[:occupied], a.sep) + 1
	copy(data, data[first:occupied])
	clear(data[occupied-first : occupied])
	a.stats.Evicted++
	return occupied - first
}

// write fills dst, which is exactly the record's length.
func (a *Accumulator) write(dst []byte, name string, line int) {
	n := copy(dst, name)
	for i := 0; i < n; i++ {
		if dst[i] == a.sep || dst[i] == 0 {
			dst[i] = '_'
		}
	}
	// The slice has exactly enough capacity for the digits, so AppendInt
	// writes in place.
	n += len(strconv.AppendInt(dst[n:n:len(dst)-1], int64(line), 10))
	dst[n] = a.sep
}

// digits returns the length of the decimal form of n, sign included.
func digits(n int) int {
	d := 1
	u := uint64(n)
	if n < 0 {
		d++
		u = uint64(-(n + 1)) + 1
	}
	for u >= 10 {
		u /= 10
		d++
	}
	return d
}

// Reset zeroes the whole buffer, dropping every record.
func (a *Accumulator) Reset() {
	a.buf.Reset()
}

// Snapshot copies the full buffer, padding included, into dst and returns
// the number of bytes copied.
func (a *Accumulator) Snapshot(dst []byte) int {
	return a.buf.Snapshot(dst)
}

// Capacity returns the buffer size in bytes
func (a *Accumulator) Capacity() int {
	return a.buf.Cap()
}

// Separator returns the record terminator
func (a *Accumulator) Separator() byte {
	return a.sep
}

// Occupied returns the number of bytes used by stored records
func (a *Accumulator) Occupied() int {
	return bytes.LastIndexByte(a.buf.Bytes(), a.sep) + 1
}

// Len returns the number of stored records
func (a *Accumulator) Len() int {
	data := a.buf.Bytes()
	return bytes.Count(data[:a.Occupied()], []byte{a.sep})
}

// Stats returns the accumulator counters
func (a *Accumulator) Stats() Stats {
	return a.stats
}
