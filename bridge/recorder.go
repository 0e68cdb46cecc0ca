package bridge

import (
	"sync"

	"github.com/philipp01105/emlog/faultlog"
)

// Recorder appends breadcrumbs to an accumulator under a mutex. Adapters
// built from the same Recorder share the lock.
type Recorder struct {
	mu  sync.Mutex
	acc *faultlog.Accumulator
}

// NewRecorder creates a recorder for acc. A nil acc gets a default-size
// accumulator.
func NewRecorder(acc *faultlog.Accumulator) *Recorder {
	if acc == nil {
		acc = faultlog.New(nil)
	}
	return &Recorder{acc: acc}
}

// Record appends file:line
func (r *Recorder) Record(file string, line int) {
	r.mu.Lock()
	r.acc.Append(file, line)
	r.mu.Unlock()
}

// Accumulator returns the underlying accumulator
func (r *Recorder) Accumulator() *faultlog.Accumulator {
	return r.acc
}

// Snapshot copies the raw buffer into dst under the lock
func (r *Recorder) Snapshot(dst []byte) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Snapshot(dst)
}

// Records returns the stored breadcrumbs, oldest first
func (r *Recorder) Records() []faultlog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Records()
}

// Stats returns the accumulator counters under the lock
func (r *Recorder) Stats() faultlog.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Stats()
}

// Occupied returns the bytes in use under the lock
func (r *Recorder) Occupied() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Occupied()
}

// Len returns the record count under the lock
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acc.Len()
}

// Capacity returns the buffer size
func (r *Recorder) Capacity() int {
	return r.acc.Capacity()
}
