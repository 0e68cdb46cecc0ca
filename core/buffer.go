package core

// DefaultCapacity is the buffer capacity used when none is configured.
const DefaultCapacity = 256

// Buffer is the fixed-capacity byte region shared by the formatter and the
// fault accumulator. It is allocated and zeroed once at construction and is
// never resized afterwards.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zeroed buffer of the given capacity. A capacity of
// zero or less selects DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{data: make([]byte, capacity)}
}

// Cap returns the fixed capacity in bytes
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the whole region, including zero padding. Writers inside
// this module mutate it in place.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset zeroes the entire region
func (b *Buffer) Reset() {
	clear(b.data)
}

// Snapshot copies the entire region, zero padding included, into dst and
// returns the number of bytes copied. dst should be Cap() bytes long.
func (b *Buffer) Snapshot(dst []byte) int {
	return copy(dst, b.data)
}
