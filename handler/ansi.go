package handler

// StripColor appends p to dst with ANSI CSI sequences (ESC '[' parameters
// final-byte) and stray ESC bytes removed, and returns the extended slice.
// An unterminated sequence at the end of p is dropped.
func StripColor(dst, p []byte) []byte {
	for i := 0; i < len(p); i++ {
		if p[i] != 0x1b {
			dst = append(dst, p[i])
			continue
		}
		if i+1 >= len(p) || p[i+1] != '[' {
			continue
		}
		// Skip parameter and intermediate bytes up to the final byte.
		j := i + 2
		for j < len(p) && (p[j] < 0x40 || p[j] > 0x7e) {
			j++
		}
		i = j
	}
	return dst
}
