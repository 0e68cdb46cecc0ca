package core

import (
	"bytes"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	if got := NewBuffer(0).Cap(); got != DefaultCapacity {
		t.Errorf("NewBuffer(0).Cap() = %d, want %d", got, DefaultCapacity)
	}
	if got := NewBuffer(-5).Cap(); got != DefaultCapacity {
		t.Errorf("NewBuffer(-5).Cap() = %d, want %d", got, DefaultCapacity)
	}

	b := NewBuffer(20)
	if b.Cap() != 20 {
		t.Fatalf("Cap() = %d, want 20", b.Cap())
	}
	if !bytes.Equal(b.Bytes(), make([]byte, 20)) {
		t.Error("new buffer is not zeroed")
	}
}

func TestBuffer_ResetAndSnapshot(t *testing.T) {
	b := NewBuffer(8)
	copy(b.Bytes(), "abc-")

	dst := make([]byte, b.Cap())
	if n := b.Snapshot(dst); n != 8 {
		t.Fatalf("Snapshot() copied %d bytes, want 8", n)
	}
	if want := []byte{'a', 'b', 'c', '-', 0, 0, 0, 0}; !bytes.Equal(dst, want) {
		t.Errorf("Snapshot() = %q, want %q", dst, want)
	}

	second := make([]byte, b.Cap())
	b.Snapshot(second)
	if !bytes.Equal(dst, second) {
		t.Error("consecutive snapshots differ")
	}

	b.Reset()
	if !bytes.Equal(b.Bytes(), make([]byte, 8)) {
		t.Errorf("Reset() left %q", b.Bytes())
	}
	if dst[0] != 'a' {
		t.Error("snapshot aliases the buffer")
	}
}
