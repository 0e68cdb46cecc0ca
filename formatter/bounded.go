package formatter

// boundedWriter writes into a fixed slice and silently discards whatever
// does not fit. It never fails, so fmt stops only when the input ends.
type boundedWriter struct {
	buf []byte
	n   int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}

func (w *boundedWriter) WriteString(s string) (int, error) {
	w.n += copy(w.buf[w.n:], s)
	return len(s), nil
}
